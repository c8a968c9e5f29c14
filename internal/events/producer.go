package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TopicMenu    = "menu_events"
	TopicCart    = "cart_events"
	TopicOrder   = "order_events"
	TopicHistory = "history_events"
)

type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
	Close() error
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *Producer) PublishEvent(ctx context.Context, topic, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: json.Marshal failed: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now().UTC(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write to %s failed: %w", topic, err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// Nop drops every event. It is used when no brokers are configured.
type Nop struct{}

func (Nop) PublishEvent(context.Context, string, string, any) error { return nil }
func (Nop) Close() error                                           { return nil }

func New(brokers []string) Publisher {
	if len(brokers) == 0 {
		return Nop{}
	}
	return NewProducer(brokers)
}
