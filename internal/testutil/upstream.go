package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/mcoot/playtime/internal/dependencies/riot"
)

// FakeRecaptcha is a siteverify stand-in. Every token is accepted unless rejected.
type FakeRecaptcha struct {
	Server *httptest.Server

	mu       sync.Mutex
	rejected map[string]bool
	status   int
	tokens   []string
}

// NewFakeRecaptcha starts a fake siteverify server that is closed with the test
func NewFakeRecaptcha(t *testing.T) *FakeRecaptcha {
	t.Helper()

	f := &FakeRecaptcha{rejected: make(map[string]bool), status: http.StatusOK}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Server.Close)
	return f
}

// URL is the verify endpoint
func (f *FakeRecaptcha) URL() string {
	return f.Server.URL
}

// Reject makes the fake answer success=false for token
func (f *FakeRecaptcha) Reject(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejected[token] = true
}

// SetStatus makes the fake answer every request with status (and no body for non-200)
func (f *FakeRecaptcha) SetStatus(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

// Tokens returns every token the fake has been asked to verify
func (f *FakeRecaptcha) Tokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tokens...)
}

func (f *FakeRecaptcha) handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	token := r.PostForm.Get("response")

	f.mu.Lock()
	f.tokens = append(f.tokens, token)
	status := f.status
	rejected := f.rejected[token]
	f.mu.Unlock()

	if status != http.StatusOK {
		w.WriteHeader(status)
		return
	}

	body := map[string]any{"success": !rejected, "hostname": "localhost"}
	if rejected {
		body["error-codes"] = []string{"invalid-input-response"}
	}
	writeJSON(w, http.StatusOK, body)
}

// FakeRiot serves summoner-v4 and champion-mastery-v4 for registered summoners.
// Requests are routed by a leading /{platform} path segment; see BaseURL.
type FakeRiot struct {
	Server *httptest.Server

	mu             sync.Mutex
	summoners      map[string]map[string]riot.SummonerDTO
	masteries      map[string][]riot.ChampionMasteryDTO
	summonerStatus int
	masteryStatus  int
	summonerCalls  int
	masteryCalls   int
	apiKeys        []string
}

// NewFakeRiot starts a fake platform API server that is closed with the test
func NewFakeRiot(t *testing.T) *FakeRiot {
	t.Helper()

	f := &FakeRiot{
		summoners: make(map[string]map[string]riot.SummonerDTO),
		masteries: make(map[string][]riot.ChampionMasteryDTO),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{platform}/lol/summoner/v4/summoners/by-name/{name}", f.handleSummoner)
	mux.HandleFunc("GET /{platform}/lol/champion-mastery/v4/champion-masteries/by-summoner/{id}", f.handleMasteries)

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

// BaseURL is a riot.Config base URL template pointing at the fake
func (f *FakeRiot) BaseURL() string {
	return f.Server.URL + "/{platform}"
}

// AddSummoner registers a summoner and the mastery points of each of its champions
func (f *FakeRiot) AddSummoner(platform, name, id string, points ...int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.summoners[platform] == nil {
		f.summoners[platform] = make(map[string]riot.SummonerDTO)
	}
	f.summoners[platform][name] = riot.SummonerDTO{
		ID:            id,
		AccountID:     "acc-" + id,
		PUUID:         "puuid-" + id,
		Name:          name,
		SummonerLevel: 30,
	}

	records := make([]riot.ChampionMasteryDTO, 0, len(points))
	for i, p := range points {
		records = append(records, riot.ChampionMasteryDTO{
			ChampionID:     int64(i + 1),
			ChampionLevel:  5,
			ChampionPoints: p,
			SummonerID:     id,
		})
	}
	f.masteries[id] = records
}

// SetSummonerStatus forces every summoner lookup to answer with status
func (f *FakeRiot) SetSummonerStatus(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summonerStatus = status
}

// SetMasteryStatus forces every mastery fetch to answer with status
func (f *FakeRiot) SetMasteryStatus(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.masteryStatus = status
}

// Calls returns how many summoner and mastery requests were served
func (f *FakeRiot) Calls() (summoner, mastery int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.summonerCalls, f.masteryCalls
}

// APIKeys returns the X-Riot-Token values seen, in order
func (f *FakeRiot) APIKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.apiKeys...)
}

func (f *FakeRiot) handleSummoner(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.summonerCalls++
	f.apiKeys = append(f.apiKeys, r.Header.Get("X-Riot-Token"))
	status := f.summonerStatus
	dto, ok := f.summoners[r.PathValue("platform")][r.PathValue("name")]
	f.mu.Unlock()

	if status != 0 {
		writeJSON(w, status, riotStatus(status, "Forced status"))
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, riotStatus(http.StatusNotFound, "Data not found - summoner not found"))
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (f *FakeRiot) handleMasteries(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.masteryCalls++
	f.apiKeys = append(f.apiKeys, r.Header.Get("X-Riot-Token"))
	status := f.masteryStatus
	records, ok := f.masteries[r.PathValue("id")]
	f.mu.Unlock()

	if status != 0 {
		writeJSON(w, status, riotStatus(status, "Forced status"))
		return
	}
	if !ok {
		records = []riot.ChampionMasteryDTO{}
	}
	writeJSON(w, http.StatusOK, records)
}

func riotStatus(code int, message string) map[string]any {
	return map[string]any{"status": map[string]any{"message": message, "status_code": code}}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
