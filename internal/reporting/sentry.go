// Package reporting forwards list fetch failures to Sentry
package reporting

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"cinefind/internal/eventbus"
)

// Init configures the global Sentry client. With an empty DSN Sentry stays
// disabled and Init returns a no-op flush.
func Init(dsn, environment, release string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     release,
	})
	if err != nil {
		return nil, fmt.Errorf("sentry init: %w", err)
	}

	return func() { sentry.Flush(2 * time.Second) }, nil
}

// Reporter captures FetchFailed events
type Reporter struct {
	capture     func(err error, tags map[string]string)
	unsubscribe func()
}

// NewReporter subscribes to fetch failures on bus and sends them to the
// current Sentry hub
func NewReporter(bus eventbus.EventBus) *Reporter {
	return newReporter(bus, captureWithHub)
}

func newReporter(bus eventbus.EventBus, capture func(error, map[string]string)) *Reporter {
	r := &Reporter{capture: capture}
	r.unsubscribe = bus.Subscribe(eventbus.EventFetchFailed, r.handleFetchFailed)
	return r
}

// Stop detaches the reporter from the bus
func (r *Reporter) Stop() {
	if r.unsubscribe != nil {
		r.unsubscribe()
	}
}

func (r *Reporter) handleFetchFailed(e eventbus.DomainEvent) {
	event, ok := e.(eventbus.FetchFailedEvent)
	if !ok || event.Err == nil {
		return
	}
	r.capture(event.Err, map[string]string{
		"mode": event.Mode.String(),
		"seq":  fmt.Sprint(event.Seq),
	})
}

func captureWithHub(err error, tags map[string]string) {
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
	})
	if id := hub.CaptureException(err); id != nil {
		zap.S().Debugf("Reported fetch failure to Sentry: %s", *id)
	}
}
