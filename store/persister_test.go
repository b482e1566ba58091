package store

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rrinconline/sticker-lab-backend/config"
	apperrors "github.com/rrinconline/sticker-lab-backend/errors"
	"github.com/rrinconline/sticker-lab-backend/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Put(ctx context.Context, table string, rec types.Record) error {
	args := m.Called(ctx, table, rec)
	return args.Error(0)
}

type pingingStore struct {
	mockStore
	pingErr error
}

func (p *pingingStore) Ping(ctx context.Context) error { return p.pingErr }

func testContact() types.ContactRecord {
	return types.ContactRecord{
		ContactID: "CONTACT-3f2a9c1e",
		Name:      "John Doe",
		Email:     "john@example.com",
		Subject:   "General Inquiry",
		Message:   "Hi there",
		Timestamp: "2024-03-09T20:05:07.123456Z",
		Status:    types.StatusNew,
	}
}

func testOrder() types.OrderRecord {
	return types.OrderRecord{
		OrderID:   "ORDER-abcdef12",
		OrderDate: "2024-03-09T20:05:07.123456Z",
		CustomerInfo: types.Customer{
			Name:  "Jane Roe",
			Email: "jane@example.com",
			ShippingAddress: types.Address{
				Street: "1 Main St", City: "Austin", State: "TX", Zip: "78701", Country: "USA",
			},
		},
		Items: []types.LineItem{{
			ProductType: "die_cut_sticker",
			Size:        "3x3",
			Quantity:    50,
			UnitPrice:   decimal.RequireFromString("0.50"),
			TotalPrice:  decimal.RequireFromString("25.00"),
			ArtworkURL:  "https://cdn.example.com/a.png",
		}},
		Subtotal: decimal.RequireFromString("25.00"),
		Shipping: decimal.RequireFromString("4.99"),
		Total:    decimal.RequireFromString("29.99"),
		Status:   types.StatusNew,
	}
}

func storageConfig(enabled bool) config.StorageConfig {
	return config.StorageConfig{
		Enabled:        enabled,
		Backend:        config.StorageBackendDynamoDB,
		ContactsTable:  "sticker_magnet_lab_contacts",
		OrdersTable:    "sticker_magnet_lab_orders",
		TimeoutSeconds: 5,
	}
}

func storedCount(t *testing.T, p *Persister, kind, result string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, p.stored.WithLabelValues(kind, result).Write(&m))
	return m.GetCounter().GetValue()
}

func TestPersisterStore(t *testing.T) {
	tests := []struct {
		name      string
		enabled   bool
		record    types.Record
		setupMock func(*mockStore)
		expectOK  bool
		result    string
	}{
		{
			name:    "contact goes to the contacts table",
			enabled: true,
			record:  testContact(),
			setupMock: func(m *mockStore) {
				m.On("Put", mock.Anything, "sticker_magnet_lab_contacts", testContact()).Return(nil)
			},
			expectOK: true,
			result:   resultStored,
		},
		{
			name:    "order goes to the orders table",
			enabled: true,
			record:  testOrder(),
			setupMock: func(m *mockStore) {
				m.On("Put", mock.Anything, "sticker_magnet_lab_orders", mock.Anything).Return(nil)
			},
			expectOK: true,
			result:   resultStored,
		},
		{
			name:    "store failure is reported not raised",
			enabled: true,
			record:  testContact(),
			setupMock: func(m *mockStore) {
				m.On("Put", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("ProvisionedThroughputExceeded"))
			},
			expectOK: false,
			result:   resultFailed,
		},
		{
			name:      "disabled storage succeeds without touching the store",
			enabled:   false,
			record:    testContact(),
			setupMock: func(m *mockStore) {},
			expectOK:  true,
			result:    resultSkipped,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &mockStore{}
			tt.setupMock(s)
			p := NewPersisterWithRegistry(s, storageConfig(tt.enabled), prometheus.NewRegistry())

			outcome := p.Store(context.Background(), tt.record)

			assert.Equal(t, tt.expectOK, outcome.OK)
			if !tt.expectOK {
				assert.Contains(t, outcome.Diagnostic, string(apperrors.StoreError))
				assert.Contains(t, outcome.Diagnostic, "ProvisionedThroughputExceeded")
			}
			assert.Equal(t, float64(1), storedCount(t, p, string(tt.record.RecordKind()), tt.result))
			s.AssertExpectations(t)
			if !tt.enabled {
				s.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestPersisterWithoutStoreIsDisabled(t *testing.T) {
	p := NewPersisterWithRegistry(nil, storageConfig(true), prometheus.NewRegistry())
	assert.False(t, p.Enabled())
	assert.True(t, p.Store(context.Background(), testContact()).OK)
}

func TestPersisterMissingTable(t *testing.T) {
	cfg := storageConfig(true)
	cfg.OrdersTable = ""
	s := &mockStore{}
	p := NewPersisterWithRegistry(s, cfg, prometheus.NewRegistry())

	outcome := p.Store(context.Background(), testOrder())
	assert.False(t, outcome.OK)
	s.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestPersisterPing(t *testing.T) {
	reg := prometheus.NewRegistry()

	plain := NewPersisterWithRegistry(&mockStore{}, storageConfig(true), reg)
	assert.NoError(t, plain.Ping(context.Background()))

	failing := NewPersisterWithRegistry(&pingingStore{pingErr: errors.New("down")}, storageConfig(true), prometheus.NewRegistry())
	assert.EqualError(t, failing.Ping(context.Background()), "down")

	disabled := NewPersisterWithRegistry(&pingingStore{pingErr: errors.New("down")}, storageConfig(false), prometheus.NewRegistry())
	assert.NoError(t, disabled.Ping(context.Background()))
}
