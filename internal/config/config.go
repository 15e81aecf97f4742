package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"autostereogram/internal/stereogram"
	"autostereogram/internal/texture"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir      string `json:"base_dir"`
	AssetDir     string `json:"asset_dir"`
	AssetListXML string `json:"asset_list_xml"`
	OutputDir    string `json:"output_dir"`

	// Render settings
	Mode           string `json:"mode"`
	MaxDepthOffset *int   `json:"max_depth_offset"`
	HelperDots     *bool  `json:"helper_dots"`
	TileWidth      int    `json:"tile_width"`
	DepthWidth     int    `json:"depth_width"`
	Format         string `json:"format"`
	Workers        int    `json:"workers"`
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
	// CLI flags override config file
	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}
	if flags.AssetDir != "" {
		c.AssetDir = flags.AssetDir
	}
	if flags.AssetListXML != "" {
		c.AssetListXML = flags.AssetListXML
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.MaxDepthOffset != nil {
		offset := *flags.MaxDepthOffset
		c.MaxDepthOffset = &offset
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.NoDots {
		off := false
		c.HelperDots = &off
	}

	// Auto-detect base dir if still empty
	if c.BaseDir == "" {
		c.BaseDir = detectBaseDir()
	}

	c.AssetDir = c.resolvePath(c.AssetDir, "Assets")
	if c.AssetListXML != "" {
		c.AssetListXML = c.resolvePath(c.AssetListXML, "")
	}
	c.OutputDir = c.resolvePath(c.OutputDir, "out")

	// Defaults for render settings
	if c.Mode == "" {
		c.Mode = stereogram.Calibrated.String()
	}
	c.Mode = strings.ToLower(c.Mode)
	if c.MaxDepthOffset == nil {
		offset := stereogram.DefaultMaxDepthOffset
		c.MaxDepthOffset = &offset
	}
	if c.HelperDots == nil {
		dots := c.Mode == stereogram.Calibrated.String()
		c.HelperDots = &dots
	}
	if c.Format == "" {
		c.Format = texture.FormatPNG
	}
	c.Format = strings.ToLower(c.Format)
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings that Resolve cannot repair.
func (c *Config) Validate() error {
	if _, err := stereogram.ParseVariant(c.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Format != texture.FormatPNG && c.Format != texture.FormatWebP {
		return fmt.Errorf("config: unknown format %q (want png or webp)", c.Format)
	}
	if c.Offset() < 0 {
		return fmt.Errorf("config: max_depth_offset %d is negative", c.Offset())
	}
	if c.TileWidth < 0 || c.DepthWidth < 0 {
		return fmt.Errorf("config: negative tile_width/depth_width")
	}
	return nil
}

// Dots reports whether helper dots are enabled.
func (c *Config) Dots() bool {
	return c.HelperDots != nil && *c.HelperDots
}

// Offset returns the max depth offset, or the default when unset.
// Zero is a valid setting and yields plain tiling.
func (c *Config) Offset() int {
	if c.MaxDepthOffset == nil {
		return stereogram.DefaultMaxDepthOffset
	}
	return *c.MaxDepthOffset
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	BaseDir        string
	AssetDir       string
	AssetListXML   string
	OutputDir      string
	Mode           string
	MaxDepthOffset *int // nil leaves the file/default value
	Format         string
	Workers        int
	NoDots         bool
}

// resolvePath makes p absolute against BaseDir, using def when p is empty.
func (c *Config) resolvePath(p, def string) string {
	if p == "" {
		p = def
	}
	if filepath.IsAbs(p) || c.BaseDir == "" {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

func detectBaseDir() string {
	// Try current working directory
	cwd, _ := os.Getwd()
	if _, err := os.Stat(filepath.Join(cwd, "Assets")); err == nil {
		return cwd
	}

	// Try relative to executable
	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Dir(exe)
		for _, base := range []string{dir, filepath.Dir(dir), filepath.Join(dir, "..", "..")} {
			if _, err := os.Stat(filepath.Join(base, "Assets")); err == nil {
				return base
			}
		}
	}

	return cwd
}
