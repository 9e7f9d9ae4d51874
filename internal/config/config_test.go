package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/fluidcarousel/internal/carousel"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FLUIDCAROUSEL_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", "fluidcarousel", "fluidcarousel.db"), cfg.Database.Path)
	require.Equal(t, "default", cfg.Deck.Name)
	require.Equal(t, carousel.DefaultTransitionDuration, cfg.Animation.Duration)
	require.Equal(t, 16*time.Millisecond, cfg.Animation.FrameInterval)
	require.Equal(t, 8.0, cfg.Gesture.CommitThreshold)

	container, item, err := cfg.Layout.Lengths()
	require.NoError(t, err)
	require.Equal(t, carousel.Percent(100), container)
	require.Equal(t, carousel.Percent(60), item)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "carousel.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[deck]
name = "talks"

[layout]
item_width = "40"
item_margin = 1

[animation]
duration = "250ms"
`), 0o600))
	t.Setenv("FLUIDCAROUSEL_CONFIG", path)
	t.Setenv("FLUIDCAROUSEL_GESTURE_COMMIT_THRESHOLD", "12")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "talks", cfg.Deck.Name)
	require.Equal(t, 1.0, cfg.Layout.ItemMargin)
	require.Equal(t, 250*time.Millisecond, cfg.Animation.Duration)
	require.Equal(t, 12.0, cfg.Gesture.CommitThreshold)

	_, item, err := cfg.Layout.Lengths()
	require.NoError(t, err)
	require.Equal(t, carousel.Px(40), item)
}

func TestLoadRejectsBadLength(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "carousel.toml")
	require.NoError(t, os.WriteFile(path, []byte("[layout]\nitem_width = \"wide\"\n"), 0o600))
	t.Setenv("FLUIDCAROUSEL_CONFIG", path)

	_, err := Load()
	require.ErrorContains(t, err, "layout.item_width")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FLUIDCAROUSEL_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "nested", "config.toml")
	t.Setenv("FLUIDCAROUSEL_CONFIG", path)

	cfg := Config{
		Database:  DatabaseConfig{Path: filepath.Join(dir, "c.db")},
		Deck:      DeckConfig{Name: "holiday"},
		Layout:    LayoutConfig{ContainerWidth: "80%", ItemWidth: "30", ItemMargin: 3, Height: 7},
		Gesture:   GestureConfig{CommitThreshold: 5},
		Animation: AnimationConfig{Duration: time.Second, FrameInterval: 20 * time.Millisecond},
	}
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg.Deck, got.Deck)
	require.Equal(t, cfg.Layout, got.Layout)
	require.Equal(t, cfg.Gesture, got.Gesture)
	require.Equal(t, cfg.Animation, got.Animation)
	require.Equal(t, cfg.Database.Path, got.Database.Path)
}
