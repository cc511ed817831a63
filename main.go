package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"cinefind/internal/analytics"
	"cinefind/internal/cache"
	"cinefind/internal/config"
	"cinefind/internal/eventbus"
	"cinefind/internal/logging"
	"cinefind/internal/reporting"
	"cinefind/internal/tmdb"
	"cinefind/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	var (
		configPath string
		logPath    string
		debounce   time.Duration
		debug      bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config dir)")
	flag.StringVar(&logPath, "log", logging.DefaultFile, "Path to the log file")
	flag.DurationVar(&debounce, "debounce", 0, "Delay after the last keystroke before searching (default 500ms)")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [query]\n\nBrowse popular movies or search TMDB by title.\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Anything left over is the initial search
	initialQuery := strings.Join(flag.Args(), " ")

	// Set up logging
	_, syncLog, err := logging.New(logPath, debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer syncLog()
	log := zap.S()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := loadOrCreateConfig(configSvc)
	if err != nil {
		log.Errorf("Error loading config: %v", err)
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ApplyEnvironment(cfg); err != nil {
		log.Errorf("Error reading environment: %v", err)
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}
	if debounce > 0 {
		cfg.Search.Debounce = config.Duration{Duration: debounce}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.API.Token == "" {
		log.Warnf("No TMDB token configured; set TMDB_API_KEY or api.token in %s", configSvc.Path())
	}

	// Error reporting
	flushSentry, err := reporting.Init(cfg.Reporting.SentryDSN, cfg.Reporting.Environment, "cinefind@"+version)
	if err != nil {
		log.Warnf("Sentry disabled: %v", err)
		flushSentry = func() {}
	}
	defer flushSentry()
	reporter := reporting.NewReporter(bus)
	defer reporter.Stop()

	// Search counting
	counter, err := analytics.NewCounter(cfg.Analytics)
	if err != nil {
		log.Warnf("Analytics disabled: %v", err)
		counter = analytics.NopCounter{}
	}
	if closer, ok := counter.(io.Closer); ok {
		defer closer.Close()
	}
	counting := analytics.NewService(bus, counter, cfg.Analytics.Timeout.Duration)
	defer counting.Stop()

	client, err := tmdb.NewClient(tmdb.Options{
		BaseURL:   cfg.API.BaseURL,
		Token:     cfg.API.Token,
		Timeout:   cfg.API.Timeout.Duration,
		RateLimit: cfg.API.RateLimit,
		Burst:     cfg.API.Burst,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating TMDB client: %v\n", err)
		os.Exit(1)
	}

	detailsCache := cache.NewMemoryCache(cfg.Details.CacheTTL.Duration, 2*cfg.Details.CacheTTL.Duration)

	// Create UI model
	uiModel := ui.NewModel(ctx, bus, cfg, client, detailsCache, initialQuery)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UISettings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	bus.Subscribe(eventbus.EventSearchCounted, func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn("Event channel full, dropping event")
		}
	})
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	if os.Getenv("CINEFIND_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Infof("Starting cinefind %s (base URL %s, debounce %s)", version, cfg.API.BaseURL, cfg.Search.Debounce)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Errorf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("UI exited normally")

	// Cleanup
	uiModel.Stop()
	cancel()
}

// loadOrCreateConfig loads the config file, writing the defaults on first run
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, error) {
	path := configSvc.Path()

	if _, err := os.Stat(path); err == nil {
		cfg, err := configSvc.Load()
		if err != nil {
			return nil, err
		}
		zap.S().Infof("Loaded config from %s", path)
		return cfg, nil
	}

	zap.S().Infof("Creating new config at %s", path)
	cfg := config.DefaultConfig()
	if err := configSvc.Save(cfg); err != nil {
		// still usable, just not persisted
		zap.S().Warnf("Failed to save config: %v", err)
	}
	return cfg, nil
}
