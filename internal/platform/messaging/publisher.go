// Package messaging defines the event publishing contract and its decorators.
package messaging

import (
	"context"
)

// SalesRecordedSubject is the subject every recorded sale is published on.
const SalesRecordedSubject = "inventory.sales.recorded"

// SalesSubjects matches all sale subjects; the stream is bound to it.
const SalesSubjects = "inventory.sales.>"

type Event interface {
	Subject() string
	Payload() ([]byte, error)
}

// Identified events carry a stable id the broker can deduplicate on.
type Identified interface {
	MessageID() string
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoopPublisher discards events. It is used when messaging is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
