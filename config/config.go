// Package config loads the player configuration. A missing file yields
// defaults; a malformed file is an error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Canvas holds the editor/layout canvas geometry in pixels.
type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Margin int `yaml:"margin"`
}

// Audio controls feedback tone synthesis.
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Storage points at the local progress database.
type Storage struct {
	Path string `yaml:"path"`
}

// Config is the full player configuration.
type Config struct {
	Canvas  Canvas  `yaml:"canvas"`
	Audio   Audio   `yaml:"audio"`
	Storage Storage `yaml:"storage"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Canvas:  Canvas{Width: 1200, Height: 1080, Margin: 20},
		Audio:   Audio{Enabled: true, Volume: 0.3},
		Storage: Storage{Path: "guideplay.db"},
	}
}

// Load reads path over the defaults. An empty path or a missing file
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 || cfg.Canvas.Margin < 0 {
		return nil, fmt.Errorf("config: invalid canvas geometry %dx%d margin %d",
			cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Margin)
	}
	return cfg, nil
}
