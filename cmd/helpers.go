package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/joho/godotenv"
	"github.com/perch-dev/perch/internal/config"
	"github.com/perch-dev/perch/internal/github"
)

// loadConfig loads and merges the effective configuration: defaults,
// discovered TOML files, then environment overrides (with an optional
// .env file loaded first).
func loadConfig() (config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get current directory: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get user home directory: %w", err)
	}

	// Missing .env is fine; it only exists to hold local credentials.
	_ = godotenv.Load()

	loadResult, err := config.Load(config.ConfigPaths(cwd, homeDir))
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	cfg := loadResult.Config
	config.ApplyEnv(&cfg)
	return cfg, nil
}

// credentialsFor picks the credential form for the configured values:
// a token when one is set, basic auth otherwise.
func credentialsFor(cfg config.Config) github.Credentials {
	if cfg.GitHub.Token != "" {
		return github.OAuthToken{Token: cfg.GitHub.Token}
	}
	return github.BasicFromConfig(cfg.GitHub)
}

// newClient builds an API client from the effective configuration.
func newClient() (*github.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return github.New(credentialsFor(cfg), cfg.HTTP.Timeout), nil
}

// renderTable builds the standard perch table with alternating row styles.
func renderTable(headers []string, rows [][]string) *table.Table {
	purple := lipgloss.Color("99")
	gray := lipgloss.Color("245")
	lightGray := lipgloss.Color("241")

	headerStyle := lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	oddRowStyle := cellStyle.Foreground(gray)
	evenRowStyle := cellStyle.Foreground(lightGray)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)
}

// truncateString truncates a string to maxLen characters, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
