package store

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rrinconline/sticker-lab-backend/config"
	"github.com/rrinconline/sticker-lab-backend/types"
)

// pgxExecer is satisfied by *pgxpool.Pool and pgxmock.PgxPoolIface.
type pgxExecer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

// PostgresStore keeps each record as a jsonb document next to its id,
// creation time and submitter email.
type PostgresStore struct {
	pool pgxExecer
}

func NewPostgresStore(pool pgxExecer) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// NewPool opens a pgx pool for cfg. Production connections require TLS.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, env config.Environment) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConnections > 0 {
		poolConfig.MaxConns = int32(cfg.MaxConnections)
	}
	if env == config.EnvProduction && poolConfig.ConnConfig.TLSConfig == nil {
		poolConfig.ConnConfig.TLSConfig = &tls.Config{
			ServerName: cfg.Host,
			MinVersion: tls.VersionTLS12,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}

func insertQuery(table string) string {
	return fmt.Sprintf(`INSERT INTO %s (id, created_at, email, payload)
	          VALUES ($1, $2::timestamptz, $3, $4)
	          ON CONFLICT (id) DO NOTHING`, pgx.Identifier{table}.Sanitize())
}

func (s *PostgresStore) Put(ctx context.Context, table string, rec types.Record) error {
	payload, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, insertQuery(table),
		rec.RecordID(),
		rec.CreatedAt(),
		rec.SubmitterEmail(),
		payload,
	)
	if err != nil {
		return fmt.Errorf("postgres insert %s into %s: %w", rec.RecordID(), table, err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
