// Package search holds the query behind the search box: it debounces edits,
// fetches the matching TMDB listing and tracks the request state the views
// render.
package search

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"cinefind/internal/domain"
	"cinefind/internal/eventbus"
)

// DefaultDelay is the quiet period after the last edit before a fetch
const DefaultDelay = 500 * time.Millisecond

// Fetcher lists movies for the two list modes
type Fetcher interface {
	Discover(ctx context.Context) ([]domain.Movie, error)
	Search(ctx context.Context, query string) ([]domain.Movie, error)
}

// debounceMsg fires when the quiet period for edit number tag has elapsed
type debounceMsg struct {
	tag uint64
}

// resultMsg carries the outcome of one list fetch
type resultMsg struct {
	req    Request
	movies []domain.Movie
	err    error
}

// Controller is driven from a Bubble Tea Update loop. It is not safe for
// concurrent use; only the returned commands run off the UI goroutine.
type Controller struct {
	fetcher Fetcher
	bus     eventbus.EventBus
	delay   time.Duration
	ctx     context.Context

	query  string
	tag    uint64 // bumped on every edit; only the latest tick may fetch
	seq    uint64 // bumped on every fetch; only the latest result is applied
	cancel context.CancelFunc
	state  RequestState
}

// New creates a controller. Fetches run under ctx; cancelling it aborts
// whatever is in flight.
func New(ctx context.Context, fetcher Fetcher, bus eventbus.EventBus, delay time.Duration) *Controller {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Controller{
		fetcher: fetcher,
		bus:     bus,
		delay:   delay,
		ctx:     ctx,
		state:   Idle{},
	}
}

// Query returns the current search text
func (c *Controller) Query() string {
	return c.query
}

// State returns the current request state
func (c *Controller) State() RequestState {
	return c.state
}

// Delay returns the debounce delay
func (c *Controller) Delay() time.Duration {
	return c.delay
}

// Init loads the popular listing, once, when the UI starts
func (c *Controller) Init() tea.Cmd {
	return c.fetch("")
}

// SetQuery records an edit of the search text and schedules a debounced
// fetch. Setting the same text again schedules nothing.
func (c *Controller) SetQuery(query string) tea.Cmd {
	if query == c.query {
		return nil
	}
	c.query = query
	c.tag++
	tag := c.tag

	return tea.Tick(c.delay, func(time.Time) tea.Msg {
		return debounceMsg{tag: tag}
	})
}

// Update handles the controller's own messages and reports whether msg
// was one of them.
func (c *Controller) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case debounceMsg:
		if msg.tag != c.tag {
			// superseded by a later edit
			return nil, true
		}
		return c.fetch(c.query), true

	case resultMsg:
		c.resolve(msg)
		return nil, true
	}
	return nil, false
}

// Stop aborts the request in flight, if any
func (c *Controller) Stop() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// fetch starts a new request and supersedes the previous one
func (c *Controller) fetch(query string) tea.Cmd {
	c.Stop()

	c.seq++
	req := NewRequest(c.seq, query)
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancel = cancel
	c.state = Loading{Request: req}

	zap.S().Infof("Fetch #%d started: mode=%s query=%q", req.Seq, req.Mode, req.Query)
	c.bus.Publish(eventbus.FetchStartedEvent{Seq: req.Seq, Mode: req.Mode, Query: req.Query})

	fetcher := c.fetcher
	bus := c.bus
	return func() tea.Msg {
		defer cancel()

		var (
			movies []domain.Movie
			err    error
		)
		if req.Mode == domain.ModeSearch {
			movies, err = fetcher.Search(ctx, req.Query)
		} else {
			movies, err = fetcher.Discover(ctx)
		}

		if err == nil {
			if movies == nil {
				movies = []domain.Movie{}
			}
			// counted even if a newer request wins the race to the screen
			bus.Publish(eventbus.FetchSucceededEvent{Seq: req.Seq, Mode: req.Mode, Query: req.Query, Count: len(movies)})
		}
		return resultMsg{req: req, movies: movies, err: err}
	}
}

// resolve applies a result if it belongs to the latest request
func (c *Controller) resolve(msg resultMsg) {
	if msg.req.Seq != c.seq {
		zap.S().Debugf("Fetch #%d result dropped, #%d is current", msg.req.Seq, c.seq)
		return
	}
	c.cancel = nil

	if msg.err != nil {
		zap.S().Errorf("Error fetching movies (#%d, %s %q): %v", msg.req.Seq, msg.req.Mode, msg.req.Query, msg.err)
		c.state = Failure{Request: msg.req, Message: FailureMessage, Err: msg.err}
		c.bus.Publish(eventbus.FetchFailedEvent{Seq: msg.req.Seq, Mode: msg.req.Mode, Query: msg.req.Query, Err: msg.err})
		return
	}

	zap.S().Infof("Fetch #%d returned %d movies", msg.req.Seq, len(msg.movies))
	c.state = Success{Request: msg.req, Movies: msg.movies}
}
