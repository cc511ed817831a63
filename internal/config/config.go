package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"cinefind/internal/eventbus"
)

// BuildToken is the TMDB read access token baked in at build time:
//
//	go build -ldflags "-X cinefind/internal/config.BuildToken=..."
var BuildToken string

const (
	DefaultBaseURL  = "https://api.themoviedb.org/3"
	DefaultDebounce = 500 * time.Millisecond

	AnalyticsNone  = "none"
	AnalyticsHTTP  = "http"
	AnalyticsRedis = "redis"
)

// Duration is a time.Duration that reads and writes as "500ms" in TOML
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// Config represents the application configuration
type Config struct {
	Version    int               `toml:"version"`
	API        APISettings       `toml:"api"`
	Search     SearchSettings    `toml:"search"`
	Analytics  AnalyticsSettings `toml:"analytics"`
	Details    DetailsSettings   `toml:"details"`
	Reporting  ReportingSettings `toml:"reporting"`
	UISettings UISettings        `toml:"ui"`
}

// APISettings configures the TMDB client
type APISettings struct {
	BaseURL   string   `toml:"base_url"`
	Token     string   `toml:"token,omitempty"`
	Timeout   Duration `toml:"timeout"`
	RateLimit float64  `toml:"rate_limit"` // requests per second, 0 disables limiting
	Burst     int      `toml:"burst"`
}

// SearchSettings configures the search box
type SearchSettings struct {
	Debounce Duration `toml:"debounce"`
}

// AnalyticsSettings configures the remote search counter
type AnalyticsSettings struct {
	Backend   string   `toml:"backend"` // none, http or redis
	Endpoint  string   `toml:"endpoint,omitempty"`
	APIKey    string   `toml:"api_key,omitempty"`
	Counter   string   `toml:"counter"`
	RedisAddr string   `toml:"redis_addr,omitempty"`
	Timeout   Duration `toml:"timeout"`
}

// DetailsSettings configures the movie details popup
type DetailsSettings struct {
	CacheTTL Duration `toml:"cache_ttl"`
}

// ReportingSettings configures error reporting
type ReportingSettings struct {
	SentryDSN   string `toml:"sentry_dsn,omitempty"`
	Environment string `toml:"environment,omitempty"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	CardWidth int  `toml:"card_width"`
	AltScreen bool `toml:"alt_screen"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/cinefind/config.toml or the closest
// equivalent on this platform.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "cinefind", "config.toml")
}

// NewConfigService creates a config service for path, or DefaultPath when empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file. A missing file
// yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys absent from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// the file may hold API keys
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:   DefaultBaseURL,
			Timeout:   Duration{10 * time.Second},
			RateLimit: 20,
			Burst:     5,
		},
		Search: SearchSettings{
			Debounce: Duration{DefaultDebounce},
		},
		Analytics: AnalyticsSettings{
			Backend: AnalyticsNone,
			Counter: "search_count",
			Timeout: Duration{5 * time.Second},
		},
		Details: DetailsSettings{
			CacheTTL: Duration{30 * time.Minute},
		},
		UISettings: UISettings{
			CardWidth: 30,
			AltScreen: true,
		},
	}
}

// Validate reports the first setting that cannot work
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL, got %q", c.API.BaseURL)
	}
	if c.API.RateLimit < 0 {
		return fmt.Errorf("api.rate_limit must not be negative")
	}
	if c.Search.Debounce.Duration < 0 {
		return fmt.Errorf("search.debounce must not be negative")
	}

	switch c.Analytics.Backend {
	case "", AnalyticsNone:
	case AnalyticsHTTP:
		if c.Analytics.Endpoint == "" {
			return fmt.Errorf("analytics.endpoint is required for the http backend")
		}
	case AnalyticsRedis:
		if c.Analytics.RedisAddr == "" {
			return fmt.Errorf("analytics.redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown analytics.backend %q", c.Analytics.Backend)
	}

	if c.UISettings.CardWidth < 12 {
		return fmt.Errorf("ui.card_width must be at least 12")
	}
	return nil
}

// environment lists the variables that override file settings
type environment struct {
	Token             string        `envconfig:"TMDB_API_KEY"`
	BaseURL           string        `envconfig:"TMDB_BASE_URL"`
	Debounce          time.Duration `envconfig:"CINEFIND_DEBOUNCE"`
	AnalyticsBackend  string        `envconfig:"CINEFIND_ANALYTICS_BACKEND"`
	AnalyticsEndpoint string        `envconfig:"CINEFIND_ANALYTICS_ENDPOINT"`
	AnalyticsKey      string        `envconfig:"CINEFIND_ANALYTICS_KEY"`
	RedisAddr         string        `envconfig:"CINEFIND_REDIS_ADDR"`
	SentryDSN         string        `envconfig:"SENTRY_DSN"`
	Environment       string        `envconfig:"CINEFIND_ENV"`
}

// ApplyEnvironment layers the build-time token, a .env file in the working
// directory and the process environment over cfg, in that order of
// increasing precedence.
func ApplyEnvironment(cfg *Config) error {
	// a missing .env is the normal case
	_ = godotenv.Load()

	if cfg.API.Token == "" {
		cfg.API.Token = BuildToken
	}

	var env environment
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("load environment error: %w", err)
	}

	if env.Token != "" {
		cfg.API.Token = env.Token
	}
	if env.BaseURL != "" {
		cfg.API.BaseURL = env.BaseURL
	}
	if env.Debounce != 0 {
		cfg.Search.Debounce = Duration{env.Debounce}
	}
	if env.AnalyticsBackend != "" {
		cfg.Analytics.Backend = env.AnalyticsBackend
	}
	if env.AnalyticsEndpoint != "" {
		cfg.Analytics.Endpoint = env.AnalyticsEndpoint
	}
	if env.AnalyticsKey != "" {
		cfg.Analytics.APIKey = env.AnalyticsKey
	}
	if env.RedisAddr != "" {
		cfg.Analytics.RedisAddr = env.RedisAddr
	}
	if env.SentryDSN != "" {
		cfg.Reporting.SentryDSN = env.SentryDSN
	}
	if env.Environment != "" {
		cfg.Reporting.Environment = env.Environment
	}

	return cfg.Validate()
}
