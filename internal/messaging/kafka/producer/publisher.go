package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// OrderPlacedEvent is the payload published when a simulated checkout
// completes.
type OrderPlacedEvent struct {
	OrderNumber string    `json:"orderNumber"`
	ItemCount   int       `json:"itemCount"`
	Subtotal    string    `json:"subtotal"`
	Shipping    string    `json:"shipping"`
	Total       string    `json:"total"`
	City        string    `json:"city"`
	PlacedAt    time.Time `json:"placedAt"`
}

//go:generate mockgen -source=publisher.go -destination=../../../mock/producer/publisher_mock.go -package=mock
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error
}

type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewPublisher(writer *kafka.Writer, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{writer: writer, logger: logger}
}

func (p *Publisher) PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderNumber),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order.placed")},
			{Key: "aggregate_type", Value: []byte("order")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	p.logger.Info("published order.placed event", zap.String("orderNumber", event.OrderNumber))
	return nil
}
