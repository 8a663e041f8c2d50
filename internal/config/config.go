// Package config loads server configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every tunable of the POS server. Values come from
// POS_-prefixed environment variables.
type Config struct {
	// ListenAddr is the HTTP listen address.
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`

	// DBPath is the SQLite database file.
	DBPath string `envconfig:"DB_PATH" default:"./data/pos.db"`

	// ImagesDir is the app-local directory for category images.
	ImagesDir string `envconfig:"IMAGES_DIR" default:"./data/images"`

	// RFCOMMChannel is the serial-profile channel the printer listens on.
	RFCOMMChannel uint8 `envconfig:"RFCOMM_CHANNEL" default:"1"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("pos", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
