package config

import "time"

// DefaultConfig returns sensible defaults for all configuration.
// Credentials default to empty strings; unauthenticated calls are
// allowed to fail at the API instead of here.
func DefaultConfig() Config {
	return Config{
		GitHub: GitHubConfig{},
		HTTP: HTTPConfig{
			Timeout: 30 * time.Second,
		},
	}
}
