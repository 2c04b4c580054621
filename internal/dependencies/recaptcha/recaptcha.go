package recaptcha

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DefaultVerifyURL is Google's siteverify endpoint
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// maxResponseSize caps how much of a verification response is read
const maxResponseSize = 64 << 10

// ErrBadResponse is returned when the verification service answers with
// a non-2xx status or a body that cannot be decoded
var ErrBadResponse = errors.New("recaptcha: bad verification response")

// Result is the outcome of a verification call
type Result struct {
	Success     bool
	Hostname    string
	ChallengeTS time.Time
	ErrorCodes  []string
}

// Verifier checks a one-time token issued by the client widget
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (Result, error)
}

// Config holds settings for the siteverify client
type Config struct {
	Secret    string
	VerifyURL string
	Timeout   time.Duration
	// Transport is optional; defaults to http.DefaultTransport
	Transport http.RoundTripper
}

// DefaultConfig returns defaults for everything except the secret
func DefaultConfig() Config {
	return Config{
		VerifyURL: DefaultVerifyURL,
		Timeout:   10 * time.Second,
	}
}

// Client verifies tokens against the siteverify API
type Client struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
}

// Ensure Client implements Verifier
var _ Verifier = (*Client)(nil)

// New creates a siteverify client
func New(cfg Config) *Client {
	if cfg.VerifyURL == "" {
		cfg.VerifyURL = DefaultVerifyURL
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &Client{
		secret:    cfg.Secret,
		verifyURL: cfg.VerifyURL,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}
}

type siteVerifyResponse struct {
	Success     *bool    `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Verify posts the token and secret as a form and interprets the success field.
// A missing success field is treated as a failed verification.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (Result, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	var body siteVerifyResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&body); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	result := Result{
		Success:    body.Success != nil && *body.Success,
		Hostname:   body.Hostname,
		ErrorCodes: body.ErrorCodes,
	}
	if ts, err := time.Parse(time.RFC3339, body.ChallengeTS); err == nil {
		result.ChallengeTS = ts
	}
	return result, nil
}

// Fingerprint returns a short stable digest of a token for log correlation.
// The token itself must never be logged.
func Fingerprint(token string) string {
	if token == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:6])
}
