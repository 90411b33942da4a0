// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice    PracticeConfig    `toml:"practice"`
	Leaderboard LeaderboardConfig `toml:"leaderboard"`
	Server      ServerConfig      `toml:"server"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	Verbs            *[]string `toml:"verbs"`
	ShowConjugations *bool     `toml:"show-conjugations"`
}

// LeaderboardConfig maps leaderboard client settings.
type LeaderboardConfig struct {
	URL      *string `toml:"url"`
	Username *string `toml:"username"`
	Email    *string `toml:"email"`
}

// ServerConfig maps leaderboard server settings. Secrets stay in the
// environment; only the listen address and the database location live here.
type ServerConfig struct {
	Addr        *string `toml:"addr"`
	DatabaseURL *string `toml:"database-url"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
