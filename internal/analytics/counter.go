// Package analytics bumps a remote "searches performed" counter after every
// successful list fetch. Calls are fire-and-forget: failures are logged and
// never reach the UI.
package analytics

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"cinefind/internal/config"
)

// Counter increments the remote search counter and returns its new total.
// A backend that cannot report a total returns 0.
type Counter interface {
	Increment(ctx context.Context) (int64, error)
}

// NopCounter is used when analytics are disabled
type NopCounter struct{}

func (NopCounter) Increment(context.Context) (int64, error) { return 0, nil }

// HTTPCounter posts an increment to a counting endpoint
type HTTPCounter struct {
	endpoint string
	apiKey   string
	counter  string
	session  string
	http     *http.Client
}

type incrementRequest struct {
	Counter   string    `json:"counter"`
	SessionID string    `json:"session_id"`
	At        time.Time `json:"at"`
}

type incrementResponse struct {
	Count int64 `json:"count"`
}

// NewHTTPCounter creates a counter for endpoint. Every request from this
// process carries the same random session ID.
func NewHTTPCounter(endpoint, apiKey, counter string, client *http.Client) *HTTPCounter {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPCounter{
		endpoint: endpoint,
		apiKey:   apiKey,
		counter:  counter,
		session:  uuid.NewString(),
		http:     client,
	}
}

// SessionID returns the ID sent with every increment
func (c *HTTPCounter) SessionID() string {
	return c.session
}

func (c *HTTPCounter) Increment(ctx context.Context) (int64, error) {
	body, err := json.Marshal(incrementRequest{
		Counter:   c.counter,
		SessionID: c.session,
		At:        time.Now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("marshal increment: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build increment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("post increment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("post increment: status %d", resp.StatusCode)
	}

	// an empty or non-JSON body still counts as success
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return 0, nil
	}
	var out incrementResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return 0, nil
	}
	return out.Count, nil
}

// RedisCounter keeps the counter in a Redis key
type RedisCounter struct {
	client redis.UniversalClient
	key    string
}

// NewRedisCounter creates a counter using key on client
func NewRedisCounter(client redis.UniversalClient, key string) *RedisCounter {
	return &RedisCounter{client: client, key: key}
}

func (c *RedisCounter) Increment(ctx context.Context) (int64, error) {
	n, err := c.client.Incr(ctx, c.key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis INCR %s: %w", c.key, err)
	}
	return n, nil
}

// Close releases the Redis connection pool
func (c *RedisCounter) Close() error {
	return c.client.Close()
}

// NewCounter builds the counter selected by the analytics settings
func NewCounter(cfg config.AnalyticsSettings) (Counter, error) {
	switch cfg.Backend {
	case "", config.AnalyticsNone:
		return NopCounter{}, nil
	case config.AnalyticsHTTP:
		return NewHTTPCounter(cfg.Endpoint, cfg.APIKey, cfg.Counter, &http.Client{Timeout: cfg.Timeout.Duration}), nil
	case config.AnalyticsRedis:
		client := redis.NewClient(&redis.Options{
			Addr:        cfg.RedisAddr,
			Password:    cfg.APIKey,
			DialTimeout: cfg.Timeout.Duration,
		})
		return NewRedisCounter(client, cfg.Counter), nil
	default:
		return nil, fmt.Errorf("unknown analytics backend %q", cfg.Backend)
	}
}
