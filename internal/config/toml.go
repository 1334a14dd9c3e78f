// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	LogLevel *string       `toml:"log-level"`
	Viewer   ViewerConfig  `toml:"viewer"`
	Decode   DecodeConfig  `toml:"decode"`
	Diagram  DiagramConfig `toml:"diagram"`
}

// ViewerConfig maps step-through viewer settings.
type ViewerConfig struct {
	IntervalMs *int  `toml:"interval-ms"`
	Autoplay   *bool `toml:"autoplay"`
}

// DecodeConfig maps decode command settings.
type DecodeConfig struct {
	Trace  *bool `toml:"trace"`
	Report *bool `toml:"report"`
}

// DiagramConfig maps diagram command settings.
type DiagramConfig struct {
	Format *string `toml:"format"`
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
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
