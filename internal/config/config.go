package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mcoot/playtime/internal/dependencies/recaptcha"
	"github.com/mcoot/playtime/internal/dependencies/riot"
)

// Config holds all server configuration, read from the environment
type Config struct {
	// Server
	Host     string `mapstructure:"HOST"`
	Port     int    `mapstructure:"PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Human verification
	RecaptchaSecretKey string        `mapstructure:"RECAPTCHA_SECRET_KEY"`
	RecaptchaSiteKey   string        `mapstructure:"RECAPTCHA_SITE_KEY"`
	RecaptchaVerifyURL string        `mapstructure:"RECAPTCHA_VERIFY_URL"`
	RecaptchaTimeout   time.Duration `mapstructure:"RECAPTCHA_TIMEOUT"`

	// Statistics API
	RiotAPIKey  string        `mapstructure:"RIOT_API_KEY"`
	RiotBaseURL string        `mapstructure:"RIOT_BASE_URL"`
	RiotTimeout time.Duration `mapstructure:"RIOT_TIMEOUT"`

	// Browser clients
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Observability
	MetricsEnabled    bool   `mapstructure:"METRICS_ENABLED"`
	SentryDSN         string `mapstructure:"SENTRY_DSN"`
	SentryEnvironment string `mapstructure:"SENTRY_ENVIRONMENT"`
	Release           string `mapstructure:"RELEASE"`
}

var defaults = map[string]any{
	"HOST":                 "",
	"PORT":                 8080,
	"LOG_LEVEL":            "info",
	"RECAPTCHA_SECRET_KEY": "",
	"RECAPTCHA_SITE_KEY":   "",
	"RECAPTCHA_VERIFY_URL": recaptcha.DefaultVerifyURL,
	"RECAPTCHA_TIMEOUT":    "10s",
	"RIOT_API_KEY":         "",
	"RIOT_BASE_URL":        riot.DefaultBaseURL,
	"RIOT_TIMEOUT":         "10s",
	"CORS_ALLOWED_ORIGINS": "*",
	"METRICS_ENABLED":      true,
	"SENTRY_DSN":           "",
	"SENTRY_ENVIRONMENT":   "development",
	"RELEASE":              "",
}

// Load reads configuration from a .env file (if present) and the environment
func Load(envFiles ...string) (*Config, error) {
	// Missing .env files are fine; variables may come from the environment
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, val := range defaults {
		v.SetDefault(key, val)
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.CORSAllowedOrigins = splitList(cfg.CORSAllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the required secrets are present and values are sane
func (c *Config) Validate() error {
	var errs []error
	if c.RecaptchaSecretKey == "" {
		errs = append(errs, errors.New("RECAPTCHA_SECRET_KEY is required"))
	}
	if c.RiotAPIKey == "" {
		errs = append(errs, errors.New("RIOT_API_KEY is required"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT: %d", c.Port))
	}
	if c.RecaptchaTimeout < 0 || c.RiotTimeout < 0 {
		errs = append(errs, errors.New("timeouts must not be negative"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// RecaptchaConfig builds the verification client settings
func (c *Config) RecaptchaConfig() recaptcha.Config {
	return recaptcha.Config{
		Secret:    c.RecaptchaSecretKey,
		VerifyURL: c.RecaptchaVerifyURL,
		Timeout:   c.RecaptchaTimeout,
	}
}

// RiotConfig builds the platform API client settings
func (c *Config) RiotConfig() riot.Config {
	return riot.Config{
		APIKey:  c.RiotAPIKey,
		BaseURL: c.RiotBaseURL,
		Timeout: c.RiotTimeout,
	}
}

// splitList trims entries and drops empty ones; a single comma-separated
// entry is split so both "a,b" and ["a","b"] decode the same way
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
