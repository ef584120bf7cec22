package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/tunedeck/internal/ui/layout"
)

const appName = "tunedeck"

const (
	defaultColumnSpacing = 1
	maxColumnSpacing     = 8
)

type Config struct {
	MusicPath string    `koanf:"music_path"` // empty means the XDG music directory
	UI        UIConfig  `koanf:"ui"`
	Log       LogConfig `koanf:"log"`
}

// UIConfig holds list rendering options.
type UIConfig struct {
	HighlightSymbol string `koanf:"highlight_symbol"` // cursor gutter marker (default: "> ")
	PlaylistSymbol  string `koanf:"playlist_symbol"`  // marker in the playlists list (default: "♫ ")
	ColumnSpacing   *int   `koanf:"column_spacing"`   // blank cells between columns, 0..8 (default: 1)
	SongColumns     []int  `koanf:"song_columns"`     // percentages for title/artist/size (default: 50,30,20)
}

// LogConfig holds zerolog settings.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/tunedeck/tunedeck.log
}

// Load reads the default config locations. Later files override earlier ones.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order, skipping missing ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.MusicPath != "" {
		cfg.MusicPath = expandPath(cfg.MusicPath)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/tunedeck/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Music returns the directory scanned for songs.
func (c *Config) Music() string {
	if c.MusicPath != "" {
		return c.MusicPath
	}
	return xdg.UserDirs.Music
}

// LogFile returns the log destination with the default applied.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// GetUIConfig returns the UI configuration with defaults applied.
func (c *Config) GetUIConfig() UIConfig {
	cfg := c.UI

	if cfg.HighlightSymbol == "" {
		cfg.HighlightSymbol = "> "
	}
	if cfg.PlaylistSymbol == "" {
		cfg.PlaylistSymbol = "♫ "
	}
	if s := cfg.ColumnSpacing; s == nil || *s < 0 || *s > maxColumnSpacing {
		spacing := defaultColumnSpacing
		cfg.ColumnSpacing = &spacing
	}
	if !validColumns(cfg.SongColumns) {
		cfg.SongColumns = []int{50, 30, 20}
	}

	return cfg
}

// Spacing returns the column spacing, or the default when it is unset.
func (u UIConfig) Spacing() int {
	if u.ColumnSpacing == nil {
		return defaultColumnSpacing
	}
	return *u.ColumnSpacing
}

func validColumns(cols []int) bool {
	if len(cols) != 3 {
		return false
	}
	constraints := make([]layout.Constraint, len(cols))
	sum := 0
	for i, p := range cols {
		constraints[i] = layout.Percentage(p)
		sum += p
	}
	return layout.Validate(constraints) == nil && sum > 0 && sum <= 100
}
