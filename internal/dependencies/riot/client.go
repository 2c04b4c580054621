package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mcoot/playtime/internal/model"
)

// DefaultBaseURL is the platform host template; {platform} is replaced by the region
const DefaultBaseURL = "https://{platform}.api.riotgames.com"

const (
	platformPlaceholder = "{platform}"
	maxErrorBody        = 4 << 10
)

var (
	// ErrNotFound matches any StatusError carrying a 404
	ErrNotFound = errors.New("riot: not found")
	// ErrBadResponse is returned for bodies that cannot be decoded or fail validation
	ErrBadResponse = errors.New("riot: bad response")
)

// StatusError is returned when the API answers with a non-200 status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("riot: status %d: %s", e.StatusCode, e.Body)
}

// Is reports 404 responses as ErrNotFound
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Config holds settings for the platform API client
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// Transport is optional; defaults to http.DefaultTransport
	Transport http.RoundTripper
}

// DefaultConfig returns defaults for everything except the API key
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: 10 * time.Second,
	}
}

// Client is a Riot Games platform API client
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Riot API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}
}

// platformURL builds the host for a region. A base URL without the
// placeholder is used as-is for every region.
func (c *Client) platformURL(region model.Region) string {
	return strings.ReplaceAll(c.baseURL, platformPlaceholder, string(region))
}

func get[T any](ctx context.Context, c *Client, url string) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Riot-Token", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var data T
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return &data, nil
}
