// Package kafka publishes domain events as JSON messages.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/coolfrog-dev/coolfrog/internal/config"
	"github.com/coolfrog-dev/coolfrog/internal/domain"
	"github.com/coolfrog-dev/coolfrog/internal/logger"
)

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Timeout = 5 * time.Second
	return cfg
}

func New(cfg config.Kafka) (*Producer, error) {
	p, err := sarama.NewSyncProducer(cfg.Brokers, NewConfig())
	if err != nil {
		return nil, fmt.Errorf("kafka.New: %w", err)
	}
	logger.Log.Info("kafka producer ready", "brokers", cfg.Brokers, "topic", cfg.Topic)
	return NewWithProducer(p, cfg.Topic), nil
}

func NewWithProducer(p sarama.SyncProducer, topic string) *Producer {
	return &Producer{producer: p, topic: topic}
}

// Publish sends the event keyed by topic id so events of one topic stay ordered.
func (p *Producer) Publish(ctx context.Context, event domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka.Publish: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.TopicId),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: event.OccurredAt,
		Headers:   []sarama.RecordHeader{{Key: []byte("type"), Value: []byte(event.Type)}},
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("kafka.Publish: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
