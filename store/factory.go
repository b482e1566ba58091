package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rrinconline/sticker-lab-backend/config"
	"github.com/rrinconline/sticker-lab-backend/db"
	"github.com/rrinconline/sticker-lab-backend/logger"
)

// New builds the backend selected by cfg.Storage.Backend. The returned
// close function releases its connections and is never nil. When storage is
// disabled no backend is built and the Store is nil.
func New(ctx context.Context, cfg *config.Config) (Store, func(), error) {
	noop := func() {}
	if !cfg.Storage.Enabled {
		return nil, noop, nil
	}

	log := logger.GetLogger().Named("store")

	switch cfg.Storage.Backend {
	case config.StorageBackendDynamoDB, "":
		awsCfg, err := cfg.AWS.Load(ctx)
		if err != nil {
			return nil, noop, err
		}
		client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = cfg.AWS.EndpointOverride()
		})
		return NewDynamoStore(client), noop, nil

	case config.StorageBackendPostgres:
		if cfg.Storage.RunMigrations {
			if err := db.RunMigrations(cfg.Database.URL()); err != nil {
				return nil, noop, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
		pool, err := NewPool(ctx, cfg.Database, cfg.Server.Environment)
		if err != nil {
			return nil, noop, err
		}
		return NewPostgresStore(pool), pool.Close, nil

	case config.StorageBackendRedis:
		client := NewRedisClient(cfg.Redis)
		return NewRedisStore(client), func() {
			if err := client.Close(); err != nil {
				log.Warnw("Failed to close redis client", "error", err)
			}
		}, nil

	case config.StorageBackendKafka:
		s := NewKafkaStore(NewKafkaWriter(cfg.Kafka.Brokers), cfg.Kafka.TopicPrefix)
		return s, func() {
			if err := s.Close(); err != nil {
				log.Warnw("Failed to close kafka writer", "error", err)
			}
		}, nil

	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Storage.Backend)
	}
}
