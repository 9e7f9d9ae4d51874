package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/fluidcarousel/internal/carousel"
)

const envPrefix = "FLUIDCAROUSEL"

// Config holds application configuration.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Deck      DeckConfig      `mapstructure:"deck"`
	Layout    LayoutConfig    `mapstructure:"layout"`
	Gesture   GestureConfig   `mapstructure:"gesture"`
	Animation AnimationConfig `mapstructure:"animation"`
	Log       LogConfig       `mapstructure:"log"`
}

// DatabaseConfig holds sqlite settings. An empty Migrations uses the
// migrations compiled into the binary.
type DatabaseConfig struct {
	Path       string `mapstructure:"path"`
	Migrations string `mapstructure:"migrations"`
}

// DeckConfig selects the deck shown on startup.
type DeckConfig struct {
	Name string `mapstructure:"name"`
}

// LayoutConfig holds strip geometry in terminal cells. Widths accept "60%"
// or a plain number of cells.
type LayoutConfig struct {
	ContainerWidth string  `mapstructure:"container_width"`
	ItemWidth      string  `mapstructure:"item_width"`
	ItemMargin     float64 `mapstructure:"item_margin"`
	Height         int     `mapstructure:"height"`
}

// GestureConfig holds drag settings.
type GestureConfig struct {
	CommitThreshold float64 `mapstructure:"commit_threshold"`
}

// AnimationConfig holds transition timing.
type AnimationConfig struct {
	Duration      time.Duration `mapstructure:"duration"`
	FrameInterval time.Duration `mapstructure:"frame_interval"`
}

// LogConfig enables debug logging to a file; the terminal is owned by the UI.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Lengths parses the layout widths.
func (l LayoutConfig) Lengths() (container, item carousel.Length, err error) {
	container, err = carousel.ParseLength(l.ContainerWidth)
	if err != nil {
		return carousel.Length{}, carousel.Length{}, fmt.Errorf("layout.container_width: %w", err)
	}
	item, err = carousel.ParseLength(l.ItemWidth)
	if err != nil {
		return carousel.Length{}, carousel.Length{}, fmt.Errorf("layout.item_width: %w", err)
	}
	return container, item, nil
}

// Load reads configuration from file and env. Env var overrides use prefix FLUIDCAROUSEL_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv(envPrefix + "_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine unless one was asked for explicitly
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that would otherwise break the layout.
func (c Config) Validate() error {
	if _, _, err := c.Layout.Lengths(); err != nil {
		return err
	}
	if c.Layout.ItemMargin < 0 {
		return fmt.Errorf("layout.item_margin: must not be negative")
	}
	if c.Animation.FrameInterval <= 0 {
		return fmt.Errorf("animation.frame_interval: must be positive")
	}
	if strings.TrimSpace(c.Deck.Name) == "" {
		return fmt.Errorf("deck.name: must not be empty")
	}
	return nil
}

// Save writes the user-editable settings to disk, creating the config
// directory if needed.
func Save(cfg Config) error {
	path := os.Getenv(envPrefix + "_CONFIG")
	if path == "" {
		path = filepath.Join(configDir(), "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("deck.name", cfg.Deck.Name)
	v.Set("layout.container_width", cfg.Layout.ContainerWidth)
	v.Set("layout.item_width", cfg.Layout.ItemWidth)
	v.Set("layout.item_margin", cfg.Layout.ItemMargin)
	v.Set("layout.height", cfg.Layout.Height)
	v.Set("gesture.commit_threshold", cfg.Gesture.CommitThreshold)
	v.Set("animation.duration", cfg.Animation.Duration.String())
	v.Set("animation.frame_interval", cfg.Animation.FrameInterval.String())

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "fluidcarousel", "fluidcarousel.db"))
	v.SetDefault("database.migrations", "")
	v.SetDefault("deck.name", "default")
	v.SetDefault("layout.container_width", "100%")
	v.SetDefault("layout.item_width", "60%")
	v.SetDefault("layout.item_margin", 2)
	v.SetDefault("layout.height", 9)
	// cells, not pixels: terminal drags are short
	v.SetDefault("gesture.commit_threshold", 8)
	v.SetDefault("animation.duration", carousel.DefaultTransitionDuration)
	v.SetDefault("animation.frame_interval", 16*time.Millisecond)
	v.SetDefault("log.file", "")
}

func configDir() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "fluidcarousel")
}
