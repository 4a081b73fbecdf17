// Package config loads the game's YAML configuration file.
//
// Every field has a default, so a missing file or an empty document yields
// a playable configuration. Values present in the file override the
// defaults field by field.
//
// # File Location
//
// Without an explicit path the file is looked up in:
//   - Linux: $XDG_CONFIG_HOME/silkroad/config.yaml or $HOME/.config/silkroad/config.yaml
//   - macOS: $HOME/.config/silkroad/config.yaml
//   - Windows: %LOCALAPPDATA%\silkroad\config.yaml
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "silkroad"
	configFile = "config.yaml"
)

// Config is the full game configuration.
type Config struct {
	Window   WindowConfig `yaml:"window"`
	Fonts    FontConfig   `yaml:"fonts"`
	Assets   AssetConfig  `yaml:"assets"`
	Menu     MenuConfig   `yaml:"menu"`
	Game     GameConfig   `yaml:"game"`
	World    string       `yaml:"world,omitempty"` // world YAML replacing the embedded one
	LogLevel string       `yaml:"log_level,omitempty"`
}

// WindowConfig sizes the window and the update rate. The update rate is
// also the input polling rate.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	TPS        int    `yaml:"tps"`
}

// FontConfig holds optional TTF/OTF paths. Empty paths use the bundled Go fonts.
type FontConfig struct {
	Title string `yaml:"title,omitempty"`
	Body  string `yaml:"body,omitempty"`
}

// AssetConfig holds optional image paths. Empty paths use generated backdrops.
type AssetConfig struct {
	Scroll string `yaml:"scroll,omitempty"`
	Map    string `yaml:"map,omitempty"`
}

// MenuConfig overrides menu presentation.
type MenuConfig struct {
	ColumnBreak int    `yaml:"column_break"`
	Pointer     string `yaml:"pointer"`
	Caret       string `yaml:"caret"`
}

// GameConfig tunes gameplay.
type GameConfig struct {
	StartingSilver int           `yaml:"starting_silver"`
	StartingGold   int           `yaml:"starting_gold"`
	NameLength     int           `yaml:"name_length"`
	BlinkPeriod    time.Duration `yaml:"blink_period"`    // full on/off cycle of map highlights
	TravelDuration time.Duration `yaml:"travel_duration"` // caravan animation per leg
	JournalSize    int           `yaml:"journal_size"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1000,
			Height: 700,
			Title:  "The Silk Road",
			TPS:    100,
		},
		Menu: MenuConfig{
			ColumnBreak: 10,
			Pointer:     "→",
			Caret:       "_",
		},
		Game: GameConfig{
			StartingSilver: 10,
			StartingGold:   10,
			NameLength:     20,
			BlinkPeriod:    628 * time.Millisecond,
			TravelDuration: 3 * time.Second,
			JournalSize:    50,
		},
	}
}

// GetConfigDir returns the OS-appropriate configuration directory.
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, appName), nil
		}
		profile := os.Getenv("USERPROFILE")
		if profile == "" {
			return "", errors.New("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(profile, "AppData", "Local", appName), nil
	case "darwin":
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// GetConfigPath returns the default configuration file path.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the configuration at path, or at GetConfigPath when path is
// empty. A missing default file yields Default(); a missing explicit file
// is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("invalid tps %d", c.Window.TPS)
	case c.Menu.ColumnBreak < 0:
		return fmt.Errorf("invalid menu column_break %d", c.Menu.ColumnBreak)
	case c.Game.StartingSilver < 0 || c.Game.StartingGold < 0:
		return errors.New("starting purse cannot be negative")
	case c.Game.BlinkPeriod <= 0:
		return fmt.Errorf("invalid blink_period %s", c.Game.BlinkPeriod)
	case c.Game.TravelDuration < 0:
		return fmt.Errorf("invalid travel_duration %s", c.Game.TravelDuration)
	case c.Game.JournalSize <= 0:
		return fmt.Errorf("invalid journal_size %d", c.Game.JournalSize)
	}
	return nil
}
