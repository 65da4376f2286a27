package config

import "os"

// Environment variables that override credentials from config files.
// An optional .env file in the working directory is loaded into the
// process environment before these are read (see cmd).
const (
	EnvUsername = "GITHUB_USERNAME"
	EnvPassword = "GITHUB_PASSWORD"
	EnvToken    = "GITHUB_TOKEN"
)

// ApplyEnv overrides credential values from the process environment.
// Unset variables leave the config untouched.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvUsername); v != "" {
		cfg.GitHub.Username = v
	}
	if v := os.Getenv(EnvPassword); v != "" {
		cfg.GitHub.Password = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.GitHub.Token = v
	}
}
