// Package store persists submission records. Each backend implements Store;
// the Persister in front of it decides whether and where to write.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rrinconline/sticker-lab-backend/types"
)

// Predefined errors for the store layer.
var (
	// ErrUnsupportedBackend is returned for an unknown STORAGE_BACKEND value.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
)

// Store writes one record into the named table, bucket or topic.
type Store interface {
	Put(ctx context.Context, table string, rec types.Record) error
}

// Pinger is implemented by backends that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// encodeRecord is the JSON document every backend stores.
func encodeRecord(rec types.Record) ([]byte, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s record %s: %w", rec.RecordKind(), rec.RecordID(), err)
	}
	return payload, nil
}
