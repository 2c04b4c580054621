package cli

import (
	"os"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Captcha   string
	Output    string
	Verbose   bool
	NoColor   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("PLAYTIME_SERVER", "http://localhost:8080"),
		Captcha:   os.Getenv("PLAYTIME_CAPTCHA"),
		Output:    "text",
		Verbose:   false,
		NoColor:   os.Getenv("NO_COLOR") != "",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
