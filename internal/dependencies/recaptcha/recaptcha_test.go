package recaptcha

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.Secret = "server-secret"
	cfg.VerifyURL = srv.URL
	return New(cfg)
}

func TestVerifySendsFormEncodedSecretAndToken(t *testing.T) {
	var got url.Values
	var contentType, method string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		got, _ = url.ParseQuery(string(body))
		_, _ = w.Write([]byte(`{"success":true,"hostname":"localhost","challenge_ts":"2024-01-01T12:00:00Z"}`))
	})

	result, err := client.Verify(context.Background(), "tok-123", "203.0.113.9")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Contains(t, contentType, "application/x-www-form-urlencoded")
	assert.Equal(t, "server-secret", got.Get("secret"))
	assert.Equal(t, "tok-123", got.Get("response"))
	assert.Equal(t, "203.0.113.9", got.Get("remoteip"))

	assert.True(t, result.Success)
	assert.Equal(t, "localhost", result.Hostname)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), result.ChallengeTS.UTC())
}

func TestVerifyOmitsEmptyRemoteIP(t *testing.T) {
	var got url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got, _ = url.ParseQuery(string(body))
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	_, err := client.Verify(context.Background(), "tok", "")
	require.NoError(t, err)
	assert.False(t, got.Has("remoteip"))
}

func TestVerifyRejectedToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
	})

	result, err := client.Verify(context.Background(), "bad", "")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, []string{"invalid-input-response"}, result.ErrorCodes)
}

func TestVerifyMissingSuccessFieldIsFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hostname":"localhost"}`))
	})

	result, err := client.Verify(context.Background(), "tok", "")
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestVerifyMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	_, err := client.Verify(context.Background(), "tok", "")
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestVerifyServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Verify(context.Background(), "tok", "")
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestVerifyTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	cfg := DefaultConfig()
	cfg.VerifyURL = addr
	_, err := New(cfg).Verify(context.Background(), "tok", "")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrBadResponse)
}

func TestVerifyTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.VerifyURL = srv.URL
	cfg.Timeout = 50 * time.Millisecond

	_, err := New(cfg).Verify(context.Background(), "tok", "")
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	assert.Empty(t, Fingerprint(""))

	fp := Fingerprint("some-token")
	assert.Len(t, fp, 12)
	assert.Equal(t, fp, Fingerprint("some-token"))
	assert.NotEqual(t, fp, Fingerprint("other-token"))
	assert.NotContains(t, fp, "some-token")
}
