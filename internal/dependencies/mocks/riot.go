package mocks

import (
	"context"
	"net/http"
	"sync"

	"github.com/mcoot/playtime/internal/dependencies/riot"
	"github.com/mcoot/playtime/internal/model"
)

// MockRiot is an in-memory stand-in for the Riot platform API.
// Summoners are keyed by region and exact name; masteries by summoner ID.
type MockRiot struct {
	mu        sync.Mutex
	summoners map[model.Region]map[string]*model.Summoner
	masteries map[model.SummonerID][]model.ChampionMastery

	// SummonerErr and MasteryErr, when set, are returned instead of data
	SummonerErr error
	MasteryErr  error

	SummonerCalls int
	MasteryCalls  int
}

// NewMockRiot creates an empty MockRiot
func NewMockRiot() *MockRiot {
	return &MockRiot{
		summoners: make(map[model.Region]map[string]*model.Summoner),
		masteries: make(map[model.SummonerID][]model.ChampionMastery),
	}
}

// AddSummoner registers a summoner on a region with its mastery records
func (m *MockRiot) AddSummoner(region model.Region, summoner *model.Summoner, records ...model.ChampionMastery) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.summoners[region] == nil {
		m.summoners[region] = make(map[string]*model.Summoner)
	}
	m.summoners[region][summoner.Name] = summoner
	m.masteries[summoner.ID] = records
}

// GetSummonerByName returns the registered summoner or a 404 StatusError
func (m *MockRiot) GetSummonerByName(_ context.Context, region model.Region, name string) (*model.Summoner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SummonerCalls++
	if m.SummonerErr != nil {
		return nil, m.SummonerErr
	}
	s, ok := m.summoners[region][name]
	if !ok {
		return nil, &riot.StatusError{StatusCode: http.StatusNotFound}
	}
	return s, nil
}

// GetChampionMasteries returns the records registered for the summoner
func (m *MockRiot) GetChampionMasteries(_ context.Context, _ model.Region, summonerID model.SummonerID) ([]model.ChampionMastery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MasteryCalls++
	if m.MasteryErr != nil {
		return nil, m.MasteryErr
	}
	return m.masteries[summonerID], nil
}
