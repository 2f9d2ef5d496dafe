// Package config loads client settings from an optional YAML file with
// environment overrides. A .env file in the working directory is honored.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full client configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Audio   AudioConfig   `yaml:"audio"`
	Archive ArchiveConfig `yaml:"archive"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	BaseURL string `yaml:"base_url"`
}

type AudioConfig struct {
	// Device overrides the OS-default capture source.
	Device string `yaml:"device"`
}

type ArchiveConfig struct {
	Path     string `yaml:"path"`
	Disabled bool   `yaml:"disabled"`
}

type LogConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in settings: local backend, default microphone,
// archive under the user's home, no log file.
func Default() *Config {
	return &Config{
		Server: ServerConfig{BaseURL: "http://127.0.0.1:8080"},
	}
}

// Load reads the YAML file at path (skipped when path is empty or absent),
// then applies .env and environment overrides. ASSESS_API_URL wins over the
// file's server.base_url.
func Load(path string) (*Config, error) {
	// Optional; a missing .env is not an error.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to defaults
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if url := os.Getenv("ASSESS_API_URL"); url != "" {
		cfg.Server.BaseURL = url
	}
	if device := os.Getenv("ASSESS_AUDIO_DEVICE"); device != "" {
		cfg.Audio.Device = device
	}

	return cfg, nil
}
