package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"pattern-renderer/internal/raster"
)

// Defaults used when neither the config file nor the CLI sets a value.
const (
	DefaultSize       = 256
	DefaultTileSize   = 32
	DefaultForeground = raster.Color(0xFF0000)
	DefaultBackground = raster.Color(0x000000)
	DefaultOutputDir  = "."
)

// Config holds the output location and the pattern geometry.
type Config struct {
	OutputDir string `json:"output_dir"`
	Manifest  bool   `json:"manifest"`

	// Geometry
	Width    int  `json:"width"`
	Height   int  `json:"height"`
	TileSize int  `json:"tile_size"`
	Radius   *int `json:"radius"` // nil means min(width, height)/3

	// Colors, as "RRGGBB" / "#RRGGBB" strings in JSON
	Foreground *raster.Color `json:"foreground"`
	Background *raster.Color `json:"background"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Manifest {
		c.Manifest = true
	}

	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Width == 0 {
		c.Width = DefaultSize
	}
	if c.Height == 0 {
		c.Height = DefaultSize
	}
	if c.TileSize == 0 {
		c.TileSize = DefaultTileSize
	}
	if c.Radius == nil {
		r := min(c.Width, c.Height) / 3
		c.Radius = &r
	}
	if c.Foreground == nil {
		fg := DefaultForeground
		c.Foreground = &fg
	}
	if c.Background == nil {
		bg := DefaultBackground
		c.Background = &bg
	}
}

// Validate reports settings the generators cannot work with.
// Call it after Resolve.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: dimensions must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("config: tile_size must be positive, got %d", c.TileSize))
	}
	if c.Radius != nil && *c.Radius < 0 {
		errs = append(errs, fmt.Errorf("config: radius must not be negative, got %d", *c.Radius))
	}
	return errors.Join(errs...)
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Manifest  bool
}
