package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	textsurface "github.com/vrosnet/go-text-surface"
)

const (
	DefaultFPS         = 30
	DefaultPoints      = textsurface.DefaultFontPoints
	DefaultConsoleCols = textsurface.DefaultConsoleWidth
	DefaultConsoleRows = textsurface.DefaultConsoleHeight
)

// Config is the surfacectl configuration file.
type Config struct {
	// Fonts maps font names used by surface files to TrueType/OpenType paths.
	Fonts  map[string]string `yaml:"fonts"`
	Points float64           `yaml:"points"`

	Play    PlayConfig    `yaml:"play"`
	Render  RenderConfig  `yaml:"render"`
	Console ConsoleConfig `yaml:"console"`
}

type PlayConfig struct {
	FPS int `yaml:"fps"`
	// Loop forces repeat on regardless of the file.
	Loop bool `yaml:"loop"`
}

type RenderConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	// Cursor draws the console cursor when rendering console input.
	Cursor bool `yaml:"cursor"`
}

type ConsoleConfig struct {
	Cols       int `yaml:"cols"`
	Rows       int `yaml:"rows"`
	Scrollback int `yaml:"scrollback"`
}

func DefaultConfig() *Config {
	return &Config{
		Fonts:  map[string]string{},
		Points: DefaultPoints,
		Play: PlayConfig{
			FPS: DefaultFPS,
		},
		Console: ConsoleConfig{
			Cols: DefaultConsoleCols,
			Rows: DefaultConsoleRows,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the player and renderer cannot use.
func (c *Config) Validate() error {
	if c.Play.FPS <= 0 {
		return fmt.Errorf("play.fps must be positive, got %d", c.Play.FPS)
	}
	if c.Points < 0 {
		return fmt.Errorf("points must not be negative, got %g", c.Points)
	}
	if c.Render.CellWidth < 0 || c.Render.CellHeight < 0 {
		return fmt.Errorf("render cell size must not be negative, got %dx%d", c.Render.CellWidth, c.Render.CellHeight)
	}
	if c.Console.Scrollback < 0 {
		return fmt.Errorf("console.scrollback must not be negative, got %d", c.Console.Scrollback)
	}
	return nil
}

// TickInterval is the wall-clock time between player updates.
func (c *Config) TickInterval() time.Duration {
	fps := c.Play.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// FontResolver resolves surface fonts through the configured name to path table.
func (c *Config) FontResolver() textsurface.FontResolver {
	return &textsurface.FinderResolver{
		Finder: textsurface.MapFinder(c.Fonts),
		Points: c.Points,
	}
}

// ConsoleOptions returns the console options described by the config.
func (c *Config) ConsoleOptions() []textsurface.Option {
	opts := []textsurface.Option{textsurface.WithSize(c.Console.Cols, c.Console.Rows)}
	if c.Console.Scrollback > 0 {
		opts = append(opts, textsurface.WithScrollback(textsurface.NewMemoryScrollback(c.Console.Scrollback)))
	}
	return opts
}
