package common

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/cases"

	"github.com/JaMo42/rectcase/painter"
)

// EnvPrefix is the prefix of environment variables overriding values of the
// general section.
const EnvPrefix = "rectcase"

type General struct {
	Width           int    `toml:"width"`
	Height          int    `toml:"height"`
	FPS             int    `toml:"fps"`
	MarkerSize      int    `toml:"marker-size" split_words:"true"`
	Palette         string `toml:"palette"`
	Backup          bool   `toml:"backup"`
	ExportFormat    string `toml:"export-format" split_words:"true"`
	PostSaveCommand string `toml:"post-save-command" split_words:"true"`
	Mouse           bool   `toml:"mouse"`
	BoxStyle        string `toml:"box-style" split_words:"true"`
}

type Config struct {
	General  General                `toml:"general"`
	Palettes map[string]PaletteSpec `toml:"palettes"`
}

func DefaultConfig() Config {
	return Config{
		General: General{
			Width:           800,
			Height:          600,
			FPS:             60,
			MarkerSize:      5,
			Palette:         "classic",
			Backup:          false,
			ExportFormat:    string(painter.FormatPNG),
			PostSaveCommand: "",
			Mouse:           true,
			BoxStyle:        "rounded",
		},
		Palettes: map[string]PaletteSpec{},
	}
}

// LoadConfig reads the config file at pathname on top of the default config.
func LoadConfig(pathname string) (Config, error) {
	data, err := os.ReadFile(pathname)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	err = toml.Unmarshal(data, &cfg)
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		return Config{}, fmt.Errorf("%v:\n%s", err, derr.String())
	} else if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides values of the general section with RECTCASE_* environment
// variables.
func (self *Config) ApplyEnv() error {
	return envconfig.Process(EnvPrefix, &self.General)
}

// Normalize case folds all names so lookups are case insensitive.
func (self *Config) Normalize() {
	caser := cases.Fold()
	self.General.Palette = caser.String(self.General.Palette)
	self.General.ExportFormat = caser.String(self.General.ExportFormat)
	palettes := make(map[string]PaletteSpec, len(self.Palettes))
	for name, spec := range self.Palettes {
		palettes[caser.String(name)] = spec
	}
	self.Palettes = palettes
}

// Check validates the config. It expects Normalize to have been called.
func (self *Config) Check() error {
	g := &self.General
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("invalid canvas size: %dx%d", g.Width, g.Height)
	}
	if g.FPS <= 0 {
		return fmt.Errorf("fps must be positive: %d", g.FPS)
	}
	if g.MarkerSize < 1 {
		return fmt.Errorf("marker-size must be at least 1: %d", g.MarkerSize)
	}
	if _, err := painter.ParseFormat(g.ExportFormat); err != nil {
		return err
	}
	if _, found := self.Palettes[g.Palette]; !found {
		return fmt.Errorf("unknown palette: %s", g.Palette)
	}
	for name, spec := range self.Palettes {
		if _, err := spec.Resolve(); err != nil {
			return fmt.Errorf("invalid palette: %s: %w", name, err)
		}
	}
	return nil
}

// Palette returns the selected palette.
func (self *Config) Palette() painter.Palette {
	spec := self.Palettes[self.General.Palette]
	palette, err := spec.Resolve()
	if err != nil {
		panic(fmt.Sprintf("Palette: unchecked config: %s", err))
	}
	return palette
}

// ExportFormat returns the configured image format.
func (self *Config) ExportFormat() painter.Format {
	format, _ := painter.ParseFormat(self.General.ExportFormat)
	return format
}
