package store

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rrinconline/sticker-lab-backend/config"
	"github.com/rrinconline/sticker-lab-backend/types"
)

// RedisStore writes each record under "<table>:<id>" with no expiry.
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

// NewRedisClient builds a client for cfg, with TLS when configured.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	opts := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return redis.NewClient(opts)
}

func recordKey(table, id string) string {
	return table + ":" + id
}

func (s *RedisStore) Put(ctx context.Context, table string, rec types.Record) error {
	payload, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, recordKey(table, rec.RecordID()), string(payload), 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", recordKey(table, rec.RecordID()), err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
