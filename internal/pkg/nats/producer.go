package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/HopOn-TAEY/HopOn-BackEnd/internal/pkg/retry"
)

// Producer handles publishing JSON messages to NATS subjects
type Producer struct {
	conn *nats.Conn
}

// NewProducer creates a new NATS producer on an existing client connection
func NewProducer(client *Client) *Producer {
	return &Producer{conn: client.GetConn()}
}

// Publish marshals message to JSON and sends it to the specified subject
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.conn.Publish(subject, msgBytes)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// PublishWithRetry publishes with exponential backoff, for events that
// should survive a brief broker hiccup.
func (p *Producer) PublishWithRetry(ctx context.Context, subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return retry.Do(ctx, retry.DefaultConfig(), "nats.publish "+subject, func(context.Context) error {
		return p.conn.Publish(subject, msgBytes)
	})
}
