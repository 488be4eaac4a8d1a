// Package config reads the TOML file that configures the nodegraph CLI and
// converts it into nodegraph.Options.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/nodegraph"
)

// Config holds the file's settings.
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Layout LayoutConfig `toml:"layout"`
	Colors ColorsConfig `toml:"colors"`
	Source SourceConfig `toml:"source"`
	Window WindowConfig `toml:"window"`
}

// CanvasConfig sets the canvas size and background.
type CanvasConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Background string  `toml:"background"`
}

// LayoutConfig controls grid placement.
type LayoutConfig struct {
	NodeSize float64 `toml:"node_size"`
	CellSize float64 `toml:"cell_size"`
	Columns  int     `toml:"columns"` // 0 = fit canvas width
	Origin   string  `toml:"origin"`  // "center" or "top-left"
}

// ColorsConfig sets the palette as "#rrggbb" strings.
type ColorsConfig struct {
	Idle      string  `toml:"idle"`
	Hovering  string  `toml:"hovering"`
	Pressed   string  `toml:"pressed"`
	Edge      string  `toml:"edge"`
	EdgeWidth float64 `toml:"edge_width"`
}

// SourceConfig names where the graph comes from. File wins over URL.
type SourceConfig struct {
	URL     string `toml:"url"`
	File    string `toml:"file"`
	Timeout string `toml:"timeout"` // Go duration, e.g. "5s"
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title         string  `toml:"title"`
	Scale         float64 `toml:"scale"`
	Debug         bool    `toml:"debug"`
	ScreenshotDir string  `toml:"screenshot_dir"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{Width: nodegraph.DefaultWidth, Height: nodegraph.DefaultHeight, Background: "#ffffff"},
		Layout: LayoutConfig{NodeSize: 2 * nodegraph.DefaultNodeRadius, CellSize: 4 * nodegraph.DefaultNodeRadius, Origin: "center"},
		Colors: ColorsConfig{Idle: "#000000", Hovering: "#ff0000", Pressed: "#00ff00", Edge: "#000000", EdgeWidth: 1},
		Source: SourceConfig{Timeout: "10s"},
		Window: WindowConfig{Title: "nodegraph", Scale: 1, ScreenshotDir: "screenshots"},
	}
}

// ConfigDir returns the nodegraph config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "nodegraph")
}

// DefaultPath returns the config file used when no path is given.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the file at path over the defaults. A missing file yields the
// defaults; unreadable files, TOML errors, unknown keys, and invalid values
// are errors.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if _, err := cfg.Options(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating its directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Options converts the config into diagram options.
func (c *Config) Options() (nodegraph.Options, error) {
	opts := nodegraph.DefaultOptions()
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return opts, fmt.Errorf("canvas size %vx%v must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	opts.Width, opts.Height = c.Canvas.Width, c.Canvas.Height

	origin, err := nodegraph.ParseOrigin(c.Layout.Origin)
	if err != nil {
		return opts, err
	}
	if c.Layout.NodeSize <= 0 || c.Layout.CellSize <= 0 {
		return opts, fmt.Errorf("layout node_size %v and cell_size %v must be positive", c.Layout.NodeSize, c.Layout.CellSize)
	}
	if c.Layout.Columns < 0 {
		return opts, fmt.Errorf("layout columns %d must not be negative", c.Layout.Columns)
	}
	opts.Layout = nodegraph.LayoutConfig{
		NodeSize:    c.Layout.NodeSize,
		CellSize:    c.Layout.CellSize,
		Columns:     c.Layout.Columns,
		CanvasWidth: c.Canvas.Width,
		Origin:      origin,
	}

	colors := []struct {
		name string
		in   string
		out  *nodegraph.Color
	}{
		{"canvas.background", c.Canvas.Background, &opts.Palette.Background},
		{"colors.idle", c.Colors.Idle, &opts.Palette.Idle},
		{"colors.hovering", c.Colors.Hovering, &opts.Palette.Hovering},
		{"colors.pressed", c.Colors.Pressed, &opts.Palette.Pressed},
		{"colors.edge", c.Colors.Edge, &opts.Palette.Edge},
	}
	for _, col := range colors {
		v, err := nodegraph.ParseHexColor(col.in)
		if err != nil {
			return opts, fmt.Errorf("%s: %w", col.name, err)
		}
		*col.out = v
	}
	if c.Colors.EdgeWidth > 0 {
		opts.Palette.EdgeWidth = c.Colors.EdgeWidth
	}

	opts.Debug = c.Window.Debug
	if c.Window.ScreenshotDir != "" {
		opts.ScreenshotDir = c.Window.ScreenshotDir
	}
	if _, err := c.FetchTimeout(); err != nil {
		return opts, err
	}
	return opts, nil
}

// FetchTimeout parses Source.Timeout. Empty means zero (no timeout).
func (c *Config) FetchTimeout() (time.Duration, error) {
	if c.Source.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Source.Timeout)
	if err != nil {
		return 0, fmt.Errorf("source.timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("source.timeout %v must not be negative", d)
	}
	return d, nil
}
