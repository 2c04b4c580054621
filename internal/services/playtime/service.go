package playtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/playtime/internal/dependencies/clock"
	"github.com/mcoot/playtime/internal/dependencies/recaptcha"
	"github.com/mcoot/playtime/internal/dependencies/riot"
	"github.com/mcoot/playtime/internal/model"
)

// SummonerResolver resolves a display name to a summoner on one platform
type SummonerResolver interface {
	GetSummonerByName(ctx context.Context, region model.Region, name string) (*model.Summoner, error)
}

// MasteryFetcher loads every champion mastery record for a summoner
type MasteryFetcher interface {
	GetChampionMasteries(ctx context.Context, region model.Region, summonerID model.SummonerID) ([]model.ChampionMastery, error)
}

// Observer receives pipeline measurements
type Observer interface {
	ObserveLookup(outcome string)
	ObserveStep(step string, d time.Duration)
}

// Lookup outcomes reported to the Observer
const (
	OutcomeOK                 = "ok"
	OutcomeVerificationFailed = "verification_failed"
	OutcomeNotFound           = "not_found"
	OutcomeUpstreamError      = "upstream_error"
	OutcomeInternalError      = "internal_error"
)

// Step names, in pipeline order
const (
	StepVerify    = "verify"
	StepResolve   = "resolve"
	StepFetch     = "fetch"
	StepAggregate = "aggregate"
)

// Request is one inbound lookup
type Request struct {
	Region       string
	SummonerName string
	Captcha      string
	RemoteIP     string
}

// lookup carries the state that flows between steps
type lookup struct {
	req       Request
	region    model.Region
	summoner  *model.Summoner
	masteries []model.ChampionMastery
	result    model.Playtime
}

type step struct {
	name string
	run  func(ctx context.Context, l *lookup) error
}

// Service runs the verify → resolve → fetch → aggregate pipeline
type Service struct {
	verifier  recaptcha.Verifier
	summoners SummonerResolver
	masteries MasteryFetcher
	clock     clock.Clock
	observer  Observer
	logger    *slog.Logger

	steps []step
}

// Option configures optional Service collaborators
type Option func(*Service)

// WithObserver sets the metrics observer
func WithObserver(o Observer) Option {
	return func(s *Service) {
		s.observer = o
	}
}

// New creates a playtime Service
func New(verifier recaptcha.Verifier, summoners SummonerResolver, masteries MasteryFetcher, clk clock.Clock, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	s := &Service{
		verifier:  verifier,
		summoners: summoners,
		masteries: masteries,
		clock:     clk,
		observer:  noopObserver{},
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.steps = []step{
		{StepVerify, func(ctx context.Context, l *lookup) error {
			return s.Verify(ctx, l.req.Captcha, l.req.RemoteIP)
		}},
		{StepResolve, func(ctx context.Context, l *lookup) error {
			region, summoner, err := s.ResolveSummoner(ctx, l.req.Region, l.req.SummonerName)
			l.region, l.summoner = region, summoner
			return err
		}},
		{StepFetch, func(ctx context.Context, l *lookup) error {
			records, err := s.FetchMasteries(ctx, l.region, l.summoner.ID)
			l.masteries = records
			return err
		}},
		{StepAggregate, func(_ context.Context, l *lookup) error {
			l.result = model.NewPlaytime(l.masteries)
			return nil
		}},
	}

	return s
}

// Lookup runs every step in order and stops at the first failure.
// Errors wrap one of model.ErrVerificationFailed, model.ErrPlayerNotFound or model.ErrUpstream.
func (s *Service) Lookup(ctx context.Context, req Request) (model.Playtime, error) {
	l := &lookup{req: req}
	logger := s.logger.With(
		slog.String("region", req.Region),
		slog.String("summoner", req.SummonerName),
		slog.String("captcha_fp", recaptcha.Fingerprint(req.Captcha)),
	)

	for _, st := range s.steps {
		elapsed, err := clock.Measure(s.clock, func() error { return st.run(ctx, l) })
		s.observer.ObserveStep(st.name, elapsed)

		if err != nil {
			outcome := outcomeFor(err)
			s.observer.ObserveLookup(outcome)
			logger.Warn("playtime lookup failed",
				slog.String("step", st.name),
				slog.String("outcome", outcome),
				slog.String("error", err.Error()),
			)
			return model.Playtime{}, err
		}
	}

	s.observer.ObserveLookup(OutcomeOK)
	logger.Info("playtime lookup succeeded",
		slog.Int("champions", l.result.Champions),
		slog.Int64("total_points", l.result.TotalPoints),
		slog.Float64("hours", l.result.Hours),
	)
	return l.result, nil
}

// Verify checks the human-verification token. An empty token fails without
// calling the verifier. Transport failures and rejected tokens both map to
// model.ErrVerificationFailed; the cause is kept in the chain for logging.
func (s *Service) Verify(ctx context.Context, token, remoteIP string) error {
	if token == "" {
		return fmt.Errorf("%w: missing token", model.ErrVerificationFailed)
	}

	result, err := s.verifier.Verify(ctx, token, remoteIP)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrVerificationFailed, err)
	}
	if !result.Success {
		return fmt.Errorf("%w: rejected %v", model.ErrVerificationFailed, result.ErrorCodes)
	}
	return nil
}

// ResolveSummoner validates the region and looks the summoner up on it.
// An unknown region never reaches the network and is reported as an upstream failure.
func (s *Service) ResolveSummoner(ctx context.Context, region, name string) (model.Region, *model.Summoner, error) {
	r, err := model.ParseRegion(region)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w: %q", model.ErrUpstream, err, region)
	}

	summoner, err := s.summoners.GetSummonerByName(ctx, r, name)
	if err != nil {
		if errors.Is(err, riot.ErrNotFound) {
			return r, nil, fmt.Errorf("%w: %w", model.ErrPlayerNotFound, err)
		}
		return r, nil, fmt.Errorf("%w: %w", model.ErrUpstream, err)
	}
	return r, summoner, nil
}

// FetchMasteries loads the summoner's mastery records; any failure is an upstream failure
func (s *Service) FetchMasteries(ctx context.Context, region model.Region, summonerID model.SummonerID) ([]model.ChampionMastery, error) {
	records, err := s.masteries.GetChampionMasteries(ctx, region, summonerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrUpstream, err)
	}
	return records, nil
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, model.ErrVerificationFailed):
		return OutcomeVerificationFailed
	case errors.Is(err, model.ErrPlayerNotFound):
		return OutcomeNotFound
	case errors.Is(err, model.ErrUpstream):
		return OutcomeUpstreamError
	default:
		return OutcomeInternalError
	}
}

type noopObserver struct{}

func (noopObserver) ObserveLookup(string)              {}
func (noopObserver) ObserveStep(string, time.Duration) {}
