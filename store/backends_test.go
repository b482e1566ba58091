package store

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/go-redis/redismock/v9"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rrinconline/sticker-lab-backend/config"
	apperrors "github.com/rrinconline/sticker-lab-backend/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDynamo struct {
	mock.Mock
}

func (m *mockDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.PutItemOutput), args.Error(1)
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func stringAttr(t *testing.T, item map[string]ddbtypes.AttributeValue, key string) string {
	t.Helper()
	av, ok := item[key].(*ddbtypes.AttributeValueMemberS)
	require.True(t, ok, "attribute %s is not a string", key)
	return av.Value
}

func TestDynamoStorePut(t *testing.T) {
	client := &mockDynamo{}
	var captured *dynamodb.PutItemInput
	client.On("PutItem", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*dynamodb.PutItemInput) }).
		Return(&dynamodb.PutItemOutput{}, nil)

	err := NewDynamoStore(client).Put(context.Background(), "sticker_magnet_lab_contacts", testContact())
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, "sticker_magnet_lab_contacts", aws.ToString(captured.TableName))
	assert.Equal(t, "CONTACT-3f2a9c1e", stringAttr(t, captured.Item, "contactId"))
	assert.Equal(t, "john@example.com", stringAttr(t, captured.Item, "email"))
	assert.Equal(t, "2024-03-09T20:05:07.123456Z", stringAttr(t, captured.Item, "timestamp"))
	assert.Equal(t, "new", stringAttr(t, captured.Item, "status"))
}

func TestDynamoStoreOrderItem(t *testing.T) {
	item, err := dynamoItem(testOrder())
	require.NoError(t, err)

	assert.Equal(t, "ORDER-abcdef12", stringAttr(t, item, "orderId"))
	assert.Equal(t, "29.99", stringAttr(t, item, "total"))
	customer, ok := item["customerInfo"].(*ddbtypes.AttributeValueMemberM)
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", stringAttr(t, customer.Value, "email"))
	items, ok := item["items"].(*ddbtypes.AttributeValueMemberL)
	require.True(t, ok)
	assert.Len(t, items.Value, 1)
}

func TestDynamoStorePutError(t *testing.T) {
	client := &mockDynamo{}
	client.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("ResourceNotFoundException"))

	err := NewDynamoStore(client).Put(context.Background(), "missing", testContact())
	assert.ErrorContains(t, err, "ResourceNotFoundException")
	assert.Equal(t, apperrors.ServerError, apperrors.TypeOf(err))
}

func TestDynamoStorePutAPIErrorIsUpstream(t *testing.T) {
	client := &mockDynamo{}
	client.On("PutItem", mock.Anything, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "ProvisionedThroughputExceededException", Message: "slow down"})

	err := NewDynamoStore(client).Put(context.Background(), "sticker_magnet_lab_contacts", testContact())
	require.Error(t, err)
	assert.Equal(t, apperrors.UpstreamError, apperrors.TypeOf(err))
	assert.ErrorContains(t, err, "ProvisionedThroughputExceededException")
}

func TestPostgresStorePut(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	rec := testContact()
	payload, err := json.Marshal(rec)
	require.NoError(t, err)

	pool.ExpectExec(regexp.QuoteMeta(insertQuery("sticker_magnet_lab_contacts"))).
		WithArgs(rec.ContactID, rec.Timestamp, rec.Email, payload).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	s := NewPostgresStore(pool)
	require.NoError(t, s.Put(context.Background(), "sticker_magnet_lab_contacts", rec))
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestPostgresStorePutError(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectExec("INSERT INTO").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("relation does not exist"))

	err = NewPostgresStore(pool).Put(context.Background(), "sticker_magnet_lab_orders", testOrder())
	assert.ErrorContains(t, err, "relation does not exist")
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestInsertQueryQuotesTable(t *testing.T) {
	assert.Contains(t, insertQuery("orders"), `INSERT INTO "orders"`)
	assert.Contains(t, insertQuery(`weird"name`), `"weird""name"`)
}

func TestPostgresStorePing(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectPing()
	pool.ExpectPing().WillReturnError(errors.New("connection refused"))

	s := NewPostgresStore(pool)
	assert.NoError(t, s.Ping(context.Background()))
	assert.Error(t, s.Ping(context.Background()))
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestRedisStorePut(t *testing.T) {
	client, mock := redismock.NewClientMock()

	rec := testOrder()
	payload, err := json.Marshal(rec)
	require.NoError(t, err)

	mock.ExpectSet("sticker_magnet_lab_orders:ORDER-abcdef12", string(payload), 0).SetVal("OK")
	mock.ExpectSet("sticker_magnet_lab_orders:ORDER-abcdef12", string(payload), 0).SetErr(errors.New("READONLY"))

	s := NewRedisStore(client)
	require.NoError(t, s.Put(context.Background(), "sticker_magnet_lab_orders", rec))
	assert.ErrorContains(t, s.Put(context.Background(), "sticker_magnet_lab_orders", rec), "READONLY")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStorePing(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectPing().SetVal("PONG")

	assert.NoError(t, NewRedisStore(client).Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKafkaStorePut(t *testing.T) {
	w := &fakeWriter{}
	s := NewKafkaStore(w, "stickerlab.")

	require.NoError(t, s.Put(context.Background(), "sticker_magnet_lab_contacts", testContact()))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "stickerlab.sticker_magnet_lab_contacts", msg.Topic)
	assert.Equal(t, []byte("CONTACT-3f2a9c1e"), msg.Key)
	assert.JSONEq(t, `{
		"contactId": "CONTACT-3f2a9c1e",
		"name": "John Doe",
		"email": "john@example.com",
		"subject": "General Inquiry",
		"message": "Hi there",
		"timestamp": "2024-03-09T20:05:07.123456Z",
		"status": "new"
	}`, string(msg.Value))
	assert.Equal(t, []kafka.Header{{Key: "kind", Value: []byte("contact")}}, msg.Headers)

	require.NoError(t, s.Close())
	assert.True(t, w.closed)
}

func TestKafkaStorePutError(t *testing.T) {
	s := NewKafkaStore(&fakeWriter{err: errors.New("leader not available")}, "")
	assert.ErrorContains(t, s.Put(context.Background(), "orders", testOrder()), "leader not available")
}

func TestNewDisabledOrUnknown(t *testing.T) {
	s, closeFn, err := New(context.Background(), &config.Config{Storage: config.StorageConfig{Enabled: false}})
	require.NoError(t, err)
	assert.Nil(t, s)
	closeFn()

	_, _, err = New(context.Background(), &config.Config{Storage: config.StorageConfig{Enabled: true, Backend: "cassandra"}})
	assert.ErrorIs(t, err, ErrUnsupportedBackend)
}

func TestNewRedisAndKafka(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{Enabled: true, Backend: config.StorageBackendRedis},
		Redis:   config.RedisConfig{Address: "localhost:6379"},
		Kafka:   config.KafkaConfig{Brokers: []string{"localhost:9092"}},
	}
	s, closeFn, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, s)
	closeFn()

	cfg.Storage.Backend = config.StorageBackendKafka
	s, closeFn, err = New(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &KafkaStore{}, s)
	closeFn()
}
