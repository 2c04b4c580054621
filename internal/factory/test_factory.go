package factory

import (
	"time"

	"github.com/mcoot/playtime/internal/dependencies/mocks"
	"github.com/mcoot/playtime/internal/model"
	"github.com/mcoot/playtime/internal/monitoring"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock    *mocks.MockClock
	MockVerifier *mocks.MockVerifier
	MockRiot     *mocks.MockRiot
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Metrics are always enabled so tests can assert on them.
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockClock.Step = 10 * time.Millisecond
	mockVerifier := mocks.NewMockVerifier()
	mockRiot := mocks.NewMockRiot()

	app := newWithDependencies(mockVerifier, mockRiot, mockRiot, mockClock, monitoring.NewMetrics(), nil)

	return &TestApp{
		App:          app,
		MockClock:    mockClock,
		MockVerifier: mockVerifier,
		MockRiot:     mockRiot,
	}
}

// AddSummoner registers a summoner on region with one mastery record per points value
func (t *TestApp) AddSummoner(region model.Region, name, id string, points ...int64) *model.Summoner {
	summoner := &model.Summoner{
		ID:    model.SummonerID(id),
		Name:  name,
		Level: 30,
	}
	records := make([]model.ChampionMastery, 0, len(points))
	for i, p := range points {
		records = append(records, model.ChampionMastery{
			ChampionID: int64(i + 1),
			Level:      5,
			Points:     p,
		})
	}
	t.MockRiot.AddSummoner(region, summoner, records...)
	return summoner
}
