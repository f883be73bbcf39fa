// Package config provides YAML-based configuration for the game
// adapter: window scale, audio switches and the asset directory. Key
// bindings are deliberately not configurable.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config holds the adapter settings.
type Config struct {
	// WindowScale multiplies the 480x272 logical resolution.
	WindowScale int `yaml:"window_scale"`

	// AssetDir is the directory holding the atlas images and sounds.
	AssetDir string `yaml:"asset_dir"`

	// Music and Effects toggle the two audio surfaces independently.
	Music   bool `yaml:"music"`
	Effects bool `yaml:"effects"`

	// LoopDelayMS overrides the fixed per-iteration idle delay.
	// Zero means the built-in default.
	LoopDelayMS int `yaml:"loop_delay_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	var cfg Config
	// The embedded YAML is compiled in; if it ever fails to parse that
	// is a programming error, not an environment one.
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default config invalid: %v", err))
	}
	return cfg
}

// Load loads configuration.
// Search order: customPath -> ./blockfall.yaml -> embedded default.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parse(customPath, data)
	}

	if data, err := os.ReadFile("blockfall.yaml"); err == nil {
		cfg, err := parse("blockfall.yaml", data)
		if err == nil {
			return cfg, nil
		}
		// A corrupt found-by-convention file falls back to the defaults,
		// but never silently.
		log.Warn("ignoring invalid config", "path", "blockfall.yaml", "err", err)
	}

	return Default(), nil
}

// parse unmarshals on top of the defaults so partial files work.
func parse(path string, data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.WindowScale < 1 {
		cfg.WindowScale = 1
	}
	return cfg, nil
}
