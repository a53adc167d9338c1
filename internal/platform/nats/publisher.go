package nats

import (
	"context"
	"fmt"

	"github.com/abgdnv/inventory/internal/platform/messaging"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const contentTypeHeader = "Content-Type"

// NatsPublisher publishes events to JetStream. Events that carry a message id are
// deduplicated by the stream within its duplicate window.
type NatsPublisher struct {
	js jetstream.Publisher
}

func NewNatsPublisher(js jetstream.Publisher) *NatsPublisher {
	return &NatsPublisher{js: js}
}

func (p *NatsPublisher) Publish(ctx context.Context, event messaging.Event) error {
	data, err := event.Payload()
	if err != nil {
		return fmt.Errorf("failed to get event payload: %w", err)
	}

	msg := nats.NewMsg(event.Subject())
	msg.Data = data
	msg.Header.Set(contentTypeHeader, "application/json")
	if identified, ok := event.(messaging.Identified); ok {
		msg.Header.Set(jetstream.MsgIDHeader, identified.MessageID())
	}

	if _, err := p.js.PublishMsg(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", event.Subject(), err)
	}
	return nil
}
