package producer

import (
	"context"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=publisher.go -destination=../../../mock/producer/publisher_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, key, eventType string, payload []byte) error
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

func NewPublisher(writer *kafka.Writer) Publisher {
	return &kafkaPublisher{writer: writer}
}

func (p *kafkaPublisher) Publish(ctx context.Context, key, eventType string, payload []byte) error {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
			{Key: "aggregate_type", Value: []byte("cart")},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}
