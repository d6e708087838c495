// Package config provides the TOML configuration file and XDG path
// helpers. File values fill gaps; flags and environment variables still
// win.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Speak SpeakConfig `toml:"speak"`
	Path  PathConfig  `toml:"path"`
	LLM   LLMConfig   `toml:"llm"`
}

// SpeakConfig maps free-practice settings.
type SpeakConfig struct {
	Mode     *string `toml:"mode"`
	Topic    *string `toml:"topic"`
	Level    *string `toml:"level"`
	AudioDir *string `toml:"audio-dir"`
}

// PathConfig maps learning-path settings.
type PathConfig struct {
	Template   *string `toml:"template"`
	ChunkWords *int    `toml:"chunk-words"`
}

// LLMConfig maps LLM usage settings.
type LLMConfig struct {
	Provider *string `toml:"provider"`
	MaxCalls *int    `toml:"max-calls"`
}

// Load reads a TOML config from the given path. A missing file is not an
// error; a malformed one is.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "sprechzeit", "config.toml")
}
