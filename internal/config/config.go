package config

import (
	"errors"
	"time"
)

// Config represents the complete perch configuration.
type Config struct {
	GitHub GitHubConfig `toml:"github"`
	HTTP   HTTPConfig   `toml:"http"`
}

// Validate checks that all config values are valid.
// Returns an error describing the first invalid value found.
func (c Config) Validate() error {
	if c.HTTP.Timeout < 0 {
		return errors.New("http.timeout cannot be negative")
	}
	return nil
}

// GitHubConfig holds the credentials used against the GitHub API.
// Token, when set, takes precedence over username/password.
type GitHubConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
	Token    string `toml:"token"`
}

// HTTPConfig configures API request execution.
type HTTPConfig struct {
	Timeout time.Duration `toml:"timeout"` // Timeout per API call (e.g., "30s")
}
