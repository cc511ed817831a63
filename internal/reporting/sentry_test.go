package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinefind/internal/domain"
	"cinefind/internal/eventbus"
)

type captured struct {
	err  error
	tags map[string]string
}

func TestReporterCapturesFetchFailures(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan captured, 2)
	r := newReporter(bus, func(err error, tags map[string]string) {
		got <- captured{err, tags}
	})
	defer r.Stop()

	boom := errors.New("status 500")
	bus.Publish(eventbus.FetchSucceededEvent{Seq: 1})
	bus.Publish(eventbus.FetchFailedEvent{Seq: 2, Mode: domain.ModeSearch, Query: "Matrix", Err: boom})

	select {
	case c := <-got:
		assert.ErrorIs(t, c.err, boom)
		assert.Equal(t, "search", c.tags["mode"])
		assert.Equal(t, "2", c.tags["seq"])
	case <-time.After(2 * time.Second):
		t.Fatal("failure was not captured")
	}

	select {
	case c := <-got:
		t.Fatalf("unexpected capture: %v", c.err)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestInitWithoutDSNIsNoop(t *testing.T) {
	flush, err := Init("", "test", "dev")
	require.NoError(t, err)
	assert.NotPanics(t, flush)
}

func TestInitRejectsMalformedDSN(t *testing.T) {
	_, err := Init("not a dsn", "test", "dev")
	assert.Error(t, err)
}
