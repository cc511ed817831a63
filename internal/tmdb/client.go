// Package tmdb is a small client for the parts of The Movie Database API
// cinefind reads: the popularity listing, title search and movie details.
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"cinefind/internal/domain"
)

// ErrFetchFailed is returned for any non-2xx response
var ErrFetchFailed = errors.New("failed to fetch movies")

// maxBodyBytes caps how much of a response body is read
const maxBodyBytes = 8 << 20

// Options configures a Client
type Options struct {
	BaseURL   string
	Token     string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables limiting
	Burst     int
	HTTP      *http.Client
}

// Client issues requests against a TMDB-compatible base URL
type Client struct {
	base    *url.URL
	token   string
	timeout time.Duration
	limiter *rate.Limiter
	http    *http.Client
}

// NewClient creates a client. The base URL must be absolute.
func NewClient(opts Options) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", opts.BaseURL)
	}

	httpClient := opts.HTTP
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return &Client{
		base:    base,
		token:   opts.Token,
		timeout: opts.Timeout,
		limiter: limiter,
		http:    httpClient,
	}, nil
}

// Endpoint returns the list URL for a mode. The query is only used in
// search mode and is sent exactly as typed.
func (c *Client) Endpoint(mode domain.Mode, query string) string {
	u := *c.base
	values := url.Values{}

	switch mode {
	case domain.ModeSearch:
		u = *u.JoinPath("search", "movie")
		values.Set("query", query)
	default:
		u = *u.JoinPath("discover", "movie")
		values.Set("sort_by", "popularity.desc")
	}

	u.RawQuery = values.Encode()
	return u.String()
}

// Discover lists movies by popularity
func (c *Client) Discover(ctx context.Context) ([]domain.Movie, error) {
	return c.list(ctx, c.Endpoint(domain.ModePopular, ""))
}

// Search looks movies up by title
func (c *Client) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	return c.list(ctx, c.Endpoint(domain.ModeSearch, query))
}

// Movie fetches the details of one movie
func (c *Client) Movie(ctx context.Context, id int64) (*domain.MovieDetails, error) {
	u := c.base.JoinPath("movie", strconv.FormatInt(id, 10))

	var details domain.MovieDetails
	if err := c.get(ctx, u.String(), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

type listResponse struct {
	Results []domain.Movie `json:"results"`
}

func (c *Client) list(ctx context.Context, endpoint string) ([]domain.Movie, error) {
	var page listResponse
	if err := c.get(ctx, endpoint, &page); err != nil {
		return nil, err
	}
	if page.Results == nil {
		return []domain.Movie{}, nil
	}
	return page.Results, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return fmt.Errorf("%w: GET %s: status %d", ErrFetchFailed, req.URL.Path, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", req.URL.Path, err)
	}
	return nil
}
