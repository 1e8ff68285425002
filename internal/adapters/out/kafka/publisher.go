package kafka

import (
	"context"
	"time"

	"kirana/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// OrderStatusChangedEvent is the JSON payload written for every durable
// status change. From is empty for a freshly placed order.
type OrderStatusChangedEvent struct {
	OrderID      string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	From         string    `json:"from,omitempty"`
	To           string    `json:"to"`
	Total        string    `json:"total"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NewOrderStatusChangedEvent snapshots the aggregate into the wire payload.
// The aggregate's current status is the status the order changed to.
func NewOrderStatusChangedEvent(aggregate *order.Order, from order.Status) OrderStatusChangedEvent {
	event := OrderStatusChangedEvent{
		OrderID:      aggregate.ID().String(),
		CustomerName: aggregate.CustomerName(),
		To:           aggregate.Status().String(),
		Total:        aggregate.Total().String(),
		OccurredAt:   time.Now().UTC(),
	}

	if from != order.Unknown {
		event.From = from.String()
	}

	return event
}

// Publisher implements ports.OrderEventPublisher on top of a Kafka topic.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher writing to the given topic.
// Returns ErrDisabled when the client has no brokers configured.
func NewPublisher(client *Client, topic string) (*Publisher, error) {
	if !client.Enabled() {
		return nil, ErrDisabled
	}

	return &Publisher{writer: client.NewWriter(topic)}, nil
}

// PublishOrderStatusChanged emits the status change keyed by order id.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order, from order.Status) error {
	return publishJSON(ctx, p.writer, aggregate.ID().String(), NewOrderStatusChangedEvent(aggregate, from))
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events. It stands in when no broker is configured so
// command handlers never need to care whether messaging is on.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops all events.
func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

// PublishOrderStatusChanged implements ports.OrderEventPublisher by doing nothing.
func (NoopPublisher) PublishOrderStatusChanged(context.Context, *order.Order, order.Status) error {
	return nil
}
