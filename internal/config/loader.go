package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadResult contains the merged config and the files that produced it.
type LoadResult struct {
	Config      Config
	SourcePaths []string // files that were read, in the order applied
}

// Load reads and merges perch config files, starting from the defaults.
// Paths should be ordered lowest to highest priority (see ConfigPaths),
// so a later file overrides the credential and timeout values of an
// earlier one while keys it leaves unset survive the merge. Missing
// paths are skipped. Environment overrides are a separate, final step
// (see ApplyEnv); Load only deals in files.
func Load(paths []string) (LoadResult, error) {
	cfg := DefaultConfig()
	var sourcePaths []string

	for _, path := range paths {
		if !isFile(path) {
			continue
		}

		metadata, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return LoadResult{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		// Typically a typo like [gihub] silently dropping credentials.
		if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
			log.Warn("unknown config keys", "path", path, "keys", undecoded)
		}

		sourcePaths = append(sourcePaths, path)
	}

	if err := cfg.Validate(); err != nil {
		return LoadResult{}, fmt.Errorf("invalid config: %w", err)
	}

	return LoadResult{
		Config:      cfg,
		SourcePaths: sourcePaths,
	}, nil
}

// isFile reports whether path exists and is a regular file.
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
