package messaging

import (
	"context"

	"github.com/sony/gobreaker/v2"
)

// BreakerPublisher stops calling the wrapped publisher after repeated failures
// and fails fast with gobreaker.ErrOpenState until the open timeout elapses.
type BreakerPublisher struct {
	next Publisher
	cb   *gobreaker.CircuitBreaker[any]
}

func NewBreakerPublisher(next Publisher, name string, consecutiveFailures uint32, settings gobreaker.Settings) *BreakerPublisher {
	settings.Name = name
	settings.ReadyToTrip = func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= consecutiveFailures
	}
	return &BreakerPublisher{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[any](settings),
	}
}

func (p *BreakerPublisher) Publish(ctx context.Context, event Event) error {
	_, err := p.cb.Execute(func() (any, error) {
		return nil, p.next.Publish(ctx, event)
	})
	return err
}

// State reports the current breaker state.
func (p *BreakerPublisher) State() gobreaker.State {
	return p.cb.State()
}
