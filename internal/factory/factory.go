package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/playtime/internal/dependencies/clock"
	"github.com/mcoot/playtime/internal/dependencies/recaptcha"
	"github.com/mcoot/playtime/internal/dependencies/riot"
	"github.com/mcoot/playtime/internal/monitoring"
	"github.com/mcoot/playtime/internal/services/playtime"
)

// Upstream service labels used on outbound metrics
const (
	ServiceRecaptcha = "recaptcha"
	ServiceRiot      = "riot"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock    clock.Clock
	Verifier recaptcha.Verifier
	Riot     *riot.Client

	// Services
	PlaytimeService *playtime.Service

	// Metrics is nil when metrics are disabled
	Metrics *monitoring.Metrics
}

// Config holds configuration for the application factory
type Config struct {
	// Recaptcha configures the siteverify client; Secret is required
	Recaptcha recaptcha.Config
	// Riot configures the platform API client; APIKey is required
	Riot riot.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Metrics enables Prometheus collectors on outbound calls and the pipeline (optional)
	Metrics *monitoring.Metrics
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if cfg.Recaptcha.Secret == "" {
		return nil, errors.New("recaptcha secret is required")
	}
	if cfg.Riot.APIKey == "" {
		return nil, errors.New("riot API key is required")
	}

	recaptchaCfg := cfg.Recaptcha
	riotCfg := cfg.Riot
	if cfg.Metrics != nil {
		recaptchaCfg.Transport = cfg.Metrics.InstrumentTransport(ServiceRecaptcha, recaptchaCfg.Transport)
		riotCfg.Transport = cfg.Metrics.InstrumentTransport(ServiceRiot, riotCfg.Transport)
	}

	// Create external dependencies
	clk := clock.New()
	verifier := recaptcha.New(recaptchaCfg)
	riotClient := riot.NewClient(riotCfg)

	app := newWithDependencies(verifier, riotClient, riotClient, clk, cfg.Metrics, logger)
	app.Riot = riotClient
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	verifier recaptcha.Verifier,
	summoners playtime.SummonerResolver,
	masteries playtime.MasteryFetcher,
	clk clock.Clock,
	metrics *monitoring.Metrics,
	logger *slog.Logger,
) *App {
	var opts []playtime.Option
	if metrics != nil {
		opts = append(opts, playtime.WithObserver(metrics))
	}

	return &App{
		Clock:           clk,
		Verifier:        verifier,
		PlaytimeService: playtime.New(verifier, summoners, masteries, clk, logger, opts...),
		Metrics:         metrics,
	}
}
