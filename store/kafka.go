package store

import (
	"context"
	"fmt"

	"github.com/rrinconline/sticker-lab-backend/types"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaStore publishes each record to "<prefix><table>", keyed by record id,
// for downstream consumers that own durable storage.
type KafkaStore struct {
	writer      messageWriter
	topicPrefix string
}

func NewKafkaStore(writer messageWriter, topicPrefix string) *KafkaStore {
	return &KafkaStore{writer: writer, topicPrefix: topicPrefix}
}

// NewKafkaWriter returns a writer whose topic is chosen per message.
func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

func (s *KafkaStore) Put(ctx context.Context, table string, rec types.Record) error {
	payload, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	topic := s.topicPrefix + table
	err = s.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(rec.RecordID()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(rec.RecordKind())},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write message to kafka topic %s: %w", topic, err)
	}
	return nil
}

func (s *KafkaStore) Close() error {
	return s.writer.Close()
}
