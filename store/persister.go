package store

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rrinconline/sticker-lab-backend/config"
	apperrors "github.com/rrinconline/sticker-lab-backend/errors"
	"github.com/rrinconline/sticker-lab-backend/logger"
	"github.com/rrinconline/sticker-lab-backend/types"
)

const (
	resultStored  = "stored"
	resultFailed  = "failed"
	resultSkipped = "skipped"
)

// Persister stores records when storage is enabled. Failures are reported
// as Outcomes and never block notification or fail the request.
type Persister struct {
	store   Store
	enabled bool
	tables  map[types.Kind]string
	timeout time.Duration
	stored  *prometheus.CounterVec
}

func NewPersister(s Store, cfg config.StorageConfig) *Persister {
	return NewPersisterWithRegistry(s, cfg, prometheus.DefaultRegisterer)
}

func NewPersisterWithRegistry(s Store, cfg config.StorageConfig, reg prometheus.Registerer) *Persister {
	stored := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stickerlab_records_stored_total",
		Help: "Submission records by storage result",
	}, []string{"kind", "result"})
	reg.MustRegister(stored)

	return &Persister{
		store:   s,
		enabled: cfg.Enabled && s != nil,
		tables: map[types.Kind]string{
			types.KindContact: cfg.ContactsTable,
			types.KindOrder:   cfg.OrdersTable,
		},
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		stored:  stored,
	}
}

// Enabled reports whether records are written at all.
func (p *Persister) Enabled() bool {
	return p.enabled
}

// Store writes rec to the table configured for its kind.
func (p *Persister) Store(ctx context.Context, rec types.Record) types.Outcome {
	kind := string(rec.RecordKind())
	if !p.enabled {
		p.stored.WithLabelValues(kind, resultSkipped).Inc()
		return types.Succeeded()
	}

	log := logger.GetLogger().Named("store")
	table, ok := p.tables[rec.RecordKind()]
	if !ok || table == "" {
		p.stored.WithLabelValues(kind, resultFailed).Inc()
		err := apperrors.New(apperrors.StoreError, "failed to store record", fmt.Sprintf("no table configured for %s records", kind))
		log.Errorw("Failed to store record", "recordId", rec.RecordID(), "error", err)
		return types.Failed(err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.store.Put(ctx, table, rec); err != nil {
		appErr := apperrors.Wrap(err, apperrors.StoreError, "failed to store record")
		p.stored.WithLabelValues(kind, resultFailed).Inc()
		log.Errorw("Failed to store record",
			"recordId", rec.RecordID(),
			"table", table,
			"error", err,
			"errorType", appErr.Type)
		return types.Failed(appErr)
	}

	p.stored.WithLabelValues(kind, resultStored).Inc()
	log.Infow("Record stored", "recordId", rec.RecordID(), "table", table)
	return types.Succeeded()
}

// Ping checks the backend when it supports reachability checks. A disabled
// persister, or a backend without Ping, reports nil.
func (p *Persister) Ping(ctx context.Context) error {
	if !p.enabled {
		return nil
	}
	if pinger, ok := p.store.(Pinger); ok {
		return pinger.Ping(ctx)
	}
	return nil
}
