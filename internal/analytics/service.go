package analytics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"cinefind/internal/eventbus"
)

// Service bumps the counter once for every FetchSucceeded event
type Service struct {
	bus         eventbus.EventBus
	counter     Counter
	timeout     time.Duration
	unsubscribe func()
}

// NewService subscribes counter to successful fetches on bus
func NewService(bus eventbus.EventBus, counter Counter, timeout time.Duration) *Service {
	s := &Service{
		bus:     bus,
		counter: counter,
		timeout: timeout,
	}
	s.unsubscribe = bus.Subscribe(eventbus.EventFetchSucceeded, s.handleFetchSucceeded)
	return s
}

// Stop detaches the service from the bus
func (s *Service) Stop() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// handleFetchSucceeded runs on a bus handler goroutine
func (s *Service) handleFetchSucceeded(e eventbus.DomainEvent) {
	event, ok := e.(eventbus.FetchSucceededEvent)
	if !ok {
		return
	}

	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	total, err := s.counter.Increment(ctx)
	if err != nil {
		zap.S().Warnf("Search count update failed after fetch #%d: %v", event.Seq, err)
		return
	}
	if total > 0 {
		s.bus.Publish(eventbus.SearchCountedEvent{Total: total})
	}
}
