package main

import (
	"io"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/cases"

	"github.com/JaMo42/rectcase/common"
	"github.com/JaMo42/rectcase/painter"
)

type paletteData struct {
	name    string
	palette painter.Palette
}

var builtinPalettes = []paletteData{
	{
		name:    "classic",
		palette: painter.ClassicPalette,
	},
	{
		name: "dark",
		palette: painter.Palette{
			Background: 0x1d1f21,
			Data:       0xc5c8c6,
			Found:      0xb5bd68,
			Search:     0xcc6666,
			Marker:     0x81a2be,
		},
	},
	{
		name: "hsv",
		palette: painter.Palette{
			Background: painter.ColorFromHSV(0, 0, 100),
			Data:       painter.ColorFromHSV(220, 50, 35),
			Found:      painter.ColorFromHSV(130, 80, 75),
			Search:     painter.ColorFromHSV(350, 85, 90),
			Marker:     painter.ColorFromHSV(275, 70, 85),
		},
	},
}

// MergeBuiltinPalettes adds the builtin palettes to the given config. Palettes
// with the same name in the config take precedence. It expects the config to
// be normalized.
func MergeBuiltinPalettes(cfg *common.Config) {
	if cfg.Palettes == nil {
		cfg.Palettes = map[string]common.PaletteSpec{}
	}
	caser := cases.Fold()
	for _, builtin := range builtinPalettes {
		name := caser.String(builtin.name)
		if _, set := cfg.Palettes[name]; set {
			continue
		}
		cfg.Palettes[name] = common.SpecFromPalette(builtin.palette)
	}
}

// DumpPalettes writes all configured palettes as TOML.
func DumpPalettes(cfg *common.Config, w io.Writer) error {
	dump := struct {
		Palettes map[string]common.PaletteSpec `toml:"palettes"`
	}{cfg.Palettes}
	return toml.NewEncoder(w).Encode(dump)
}
