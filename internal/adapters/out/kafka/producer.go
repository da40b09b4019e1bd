// Package kafka publishes order integration events to a Kafka topic.
// Events are emitted after the owning database transaction commits.
package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"tailoring/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// OrderStatusChangedEvent is the wire format for order lifecycle events.
type OrderStatusChangedEvent struct {
	OrderID     string    `json:"orderId"`
	RequesterID string    `json:"requesterId"`
	TailorID    string    `json:"tailorId"`
	GarmentType string    `json:"garmentType"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// Producer writes order events to Kafka. It satisfies the
// ports.OrderEventPublisher contract.
type Producer struct {
	w *kafka.Writer
}

// NewProducer creates a producer for the given brokers (comma separated)
// and topic.
func NewProducer(brokersSTR, topic string) *Producer {
	brokers := strings.Split(brokersSTR, ",")

	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
		},
	}
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.w.Close()
}

// PublishStatusChanged emits an event reflecting the order's current status.
// Messages are keyed by order id so per-order ordering is preserved.
func (p *Producer) PublishStatusChanged(ctx context.Context, aggregate *order.Order) error {
	event := OrderStatusChangedEvent{
		OrderID:     aggregate.ID().String(),
		RequesterID: aggregate.RequesterID().String(),
		TailorID:    aggregate.TailorID().String(),
		GarmentType: aggregate.GarmentType(),
		Status:      aggregate.Status().String(),
		OccurredAt:  aggregate.UpdatedAt(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: b,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	})
}
