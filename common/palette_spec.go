package common

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/JaMo42/rectcase/painter"
)

// PaletteSpec is a palette as written in the config file, colors are hex
// strings like "#ff8000".
type PaletteSpec struct {
	Background string `toml:"background"`
	Data       string `toml:"data"`
	Found      string `toml:"found"`
	Search     string `toml:"search"`
	Marker     string `toml:"marker"`
}

func parseColor(field, value string) (painter.Color, error) {
	c, err := colorful.Hex(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid color ‘%s’", field, value)
	}
	return painter.RGB(c.RGB255()), nil
}

// Resolve parses all colors of the palette.
func (self *PaletteSpec) Resolve() (painter.Palette, error) {
	var palette painter.Palette
	fields := []struct {
		name  string
		value string
		dest  *painter.Color
	}{
		{"background", self.Background, &palette.Background},
		{"data", self.Data, &palette.Data},
		{"found", self.Found, &palette.Found},
		{"search", self.Search, &palette.Search},
		{"marker", self.Marker, &palette.Marker},
	}
	for _, field := range fields {
		color, err := parseColor(field.name, field.value)
		if err != nil {
			return palette, err
		}
		*field.dest = color
	}
	return palette, nil
}

// SpecFromPalette creates the config representation of a palette.
func SpecFromPalette(palette painter.Palette) PaletteSpec {
	hex := func(c painter.Color) string {
		return fmt.Sprintf("#%06x", c)
	}
	return PaletteSpec{
		Background: hex(palette.Background),
		Data:       hex(palette.Data),
		Found:      hex(palette.Found),
		Search:     hex(palette.Search),
		Marker:     hex(palette.Marker),
	}
}
