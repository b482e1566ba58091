package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rrinconline/sticker-lab-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type redisPinger struct {
	ping func(ctx context.Context) error
}

func (r redisPinger) Ping(ctx context.Context) error {
	return r.ping(ctx)
}

func TestNewHealthService(t *testing.T) {
	service := NewHealthService(map[string]Pinger{"storage": nil}, "1.0.0")

	assert.NotNil(t, service)
	assert.Equal(t, "1.0.0", service.version)
	assert.NotNil(t, service.log)
	assert.Empty(t, service.components)
	assert.True(t, time.Since(service.startTime) < time.Second)
}

func TestHealthService_CheckHealth(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(pgxmock.PgxPoolIface, redismock.ClientMock)
		expectedStatus types.HealthStatus
		expectedComps  map[string]types.HealthStatus
	}{
		{
			name: "All components healthy",
			setupMocks: func(dbMock pgxmock.PgxPoolIface, redisMock redismock.ClientMock) {
				dbMock.ExpectPing()
				redisMock.ExpectPing().SetVal("PONG")
			},
			expectedStatus: types.HealthStatusUp,
			expectedComps: map[string]types.HealthStatus{
				"database": types.HealthStatusUp,
				"redis":    types.HealthStatusUp,
			},
		},
		{
			name: "Database down, Redis up",
			setupMocks: func(dbMock pgxmock.PgxPoolIface, redisMock redismock.ClientMock) {
				dbMock.ExpectPing().WillReturnError(errors.New("connection refused"))
				redisMock.ExpectPing().SetVal("PONG")
			},
			expectedStatus: types.HealthStatusDown,
			expectedComps: map[string]types.HealthStatus{
				"database": types.HealthStatusDown,
				"redis":    types.HealthStatusUp,
			},
		},
		{
			name: "All components down",
			setupMocks: func(dbMock pgxmock.PgxPoolIface, redisMock redismock.ClientMock) {
				dbMock.ExpectPing().WillReturnError(errors.New("db error"))
				redisMock.ExpectPing().SetErr(errors.New("redis error"))
			},
			expectedStatus: types.HealthStatusDown,
			expectedComps: map[string]types.HealthStatus{
				"database": types.HealthStatusDown,
				"redis":    types.HealthStatusDown,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mockDB.Close()

			mockRedisClient, mockRedis := redismock.NewClientMock()

			tt.setupMocks(mockDB, mockRedis)

			service := NewHealthService(map[string]Pinger{
				"database": mockDB,
				"redis": redisPinger{ping: func(ctx context.Context) error {
					return mockRedisClient.Ping(ctx).Err()
				}},
			}, "1.0.0")

			health := service.CheckHealth(context.Background())

			assert.Equal(t, tt.expectedStatus, health.Status)
			assert.Equal(t, "1.0.0", health.Version)
			assert.NotEmpty(t, health.Timestamp)
			assert.NotEmpty(t, health.Uptime)
			for comp, status := range tt.expectedComps {
				assert.Equal(t, status, health.Components[comp].Status, comp)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
			assert.NoError(t, mockRedis.ExpectationsWereMet())
		})
	}
}

func TestHealthService_NoComponents(t *testing.T) {
	health := NewHealthService(nil, "dev").CheckHealth(context.Background())

	assert.Equal(t, types.HealthStatusUp, health.Status)
	assert.Empty(t, health.Components)
}
