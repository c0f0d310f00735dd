// Package config reads runtime options from VRROOM_* environment variables
// and lets command-line flags override them.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Debug       bool   `env:"VRROOM_DEBUG"`
	AssetsDir   string `env:"VRROOM_ASSETS_DIR"`
	Watch       bool   `env:"VRROOM_WATCH"`
	BaseMonitor bool   `env:"VRROOM_BASE_MONITOR"`
	// XR and Secure report host capabilities to scene scripts.
	XR     bool `env:"VRROOM_XR"`
	Secure bool `env:"VRROOM_SECURE" envDefault:"true"`
	// DocumentOut is where the rendered page is written on exit.
	DocumentOut string `env:"VRROOM_DOCUMENT_OUT"`
}

// Load parses the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}

// RegisterFlags binds flags to cfg using the current values as defaults.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug overlay")
	fs.StringVar(&cfg.AssetsDir, "assets", cfg.AssetsDir, "directory to read assets from before the embedded copies")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload assets when files under -assets change")
	fs.BoolVar(&cfg.BaseMonitor, "m", cfg.BaseMonitor, "use base monitor instead of primary (for multi-monitor setups)")
	fs.BoolVar(&cfg.XR, "xr", cfg.XR, "report an immersive VR device to scripts")
	fs.BoolVar(&cfg.Secure, "secure", cfg.Secure, "report a secure context to scripts")
	fs.StringVar(&cfg.DocumentOut, "document", cfg.DocumentOut, "write the page HTML to this file on exit")
}

// Validate checks option combinations.
func (cfg Config) Validate() error {
	if cfg.Watch && cfg.AssetsDir == "" {
		return fmt.Errorf("config: -watch requires -assets")
	}
	return nil
}
