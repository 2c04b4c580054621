package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/playtime/internal/dependencies/recaptcha"
	"github.com/mcoot/playtime/internal/dependencies/riot"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("RECAPTCHA_SECRET_KEY", "secret")
	t.Setenv("RIOT_API_KEY", "riot-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, recaptcha.DefaultVerifyURL, cfg.RecaptchaVerifyURL)
	assert.Equal(t, 10*time.Second, cfg.RecaptchaTimeout)
	assert.Equal(t, riot.DefaultBaseURL, cfg.RiotBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RiotTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.MetricsEnabled)
	assert.Empty(t, cfg.SentryDSN)
}

func TestLoadFromEnvironment(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RECAPTCHA_SITE_KEY", "public-key")
	t.Setenv("RIOT_TIMEOUT", "2500ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "public-key", cfg.RecaptchaSiteKey)
	assert.Equal(t, 2500*time.Millisecond, cfg.RiotTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.MetricsEnabled)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RECAPTCHA_SECRET_KEY=from-file\nRIOT_API_KEY=file-key\n"), 0600))

	// Ensure the file values are not shadowed, and are cleaned up afterwards
	t.Setenv("RECAPTCHA_SECRET_KEY", "")
	t.Setenv("RIOT_API_KEY", "")
	require.NoError(t, os.Unsetenv("RECAPTCHA_SECRET_KEY"))
	require.NoError(t, os.Unsetenv("RIOT_API_KEY"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.RecaptchaSecretKey)
	assert.Equal(t, "file-key", cfg.RiotAPIKey)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("RECAPTCHA_SECRET_KEY", "")
	t.Setenv("RIOT_API_KEY", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RECAPTCHA_SECRET_KEY is required")
	assert.Contains(t, err.Error(), "RIOT_API_KEY is required")
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Config{
		RecaptchaSecretKey: "s",
		RiotAPIKey:         "k",
		Port:               70000,
		LogLevel:           "loud",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PORT")
	assert.Contains(t, err.Error(), "invalid LOG_LEVEL")
}

func TestClientConfigs(t *testing.T) {
	cfg := Config{
		RecaptchaSecretKey: "s",
		RecaptchaVerifyURL: "http://verify",
		RecaptchaTimeout:   time.Second,
		RiotAPIKey:         "k",
		RiotBaseURL:        "http://riot/{platform}",
		RiotTimeout:        2 * time.Second,
	}

	rc := cfg.RecaptchaConfig()
	assert.Equal(t, "s", rc.Secret)
	assert.Equal(t, "http://verify", rc.VerifyURL)
	assert.Equal(t, time.Second, rc.Timeout)

	pc := cfg.RiotConfig()
	assert.Equal(t, "k", pc.APIKey)
	assert.Equal(t, "http://riot/{platform}", pc.BaseURL)
	assert.Equal(t, 2*time.Second, pc.Timeout)
}
