// Package kafka publishes order lifecycle events to a Kafka topic. The
// adapter is optional: when no broker is configured the composition root
// wires the no-op publisher instead and the rest of the application runs
// unchanged.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ErrDisabled is returned when a publisher is requested without any broker configured.
var ErrDisabled = errors.New("kafka disabled")

// Client holds the broker list shared by all writers.
type Client struct {
	Brokers []string
}

// NewClient parses a comma-separated broker list. Blank entries are dropped,
// so an unset environment variable yields a disabled client.
func NewClient(brokersCSV string) *Client {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return &Client{Brokers: brokers}
}

// Enabled reports whether at least one broker is configured.
func (c *Client) Enabled() bool {
	return len(c.Brokers) > 0
}

// NewWriter creates a writer for the given topic. The hash balancer keys
// partition assignment, so all events of one order land on one partition and
// keep their relative order.
func (c *Client) NewWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(c.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

// publishJSON marshals payload and writes it under the given partition key.
func publishJSON(ctx context.Context, writer *kafka.Writer, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data, Time: time.Now().UTC()})
}
