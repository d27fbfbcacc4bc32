package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JaMo42/rectcase/painter"
)

func classicConfig() Config {
	cfg := DefaultConfig()
	cfg.Palettes["classic"] = SpecFromPalette(painter.ClassicPalette)
	return cfg
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := classicConfig()
	cfg.Normalize()
	require.NoError(t, cfg.Check())
	require.Equal(t, painter.ClassicPalette, cfg.Palette())
	require.Equal(t, painter.FormatPNG, cfg.ExportFormat())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rectcase.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[general]
width = 320
fps = 30
marker-size = 3
palette = "Mine"
export-format = "BMP"
post-save-command = "echo %FILE%"

[palettes.mine]
background = "#000000"
data = "#ffffff"
found = "#00ff00"
search = "#ff0000"
marker = "#00f"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	cfg.Normalize()
	require.NoError(t, cfg.Check())
	require.Equal(t, 320, cfg.General.Width)
	require.Equal(t, 600, cfg.General.Height)
	require.Equal(t, 30, cfg.General.FPS)
	require.Equal(t, 3, cfg.General.MarkerSize)
	require.Equal(t, "echo %FILE%", cfg.General.PostSaveCommand)
	require.Equal(t, painter.FormatBMP, cfg.ExportFormat())
	require.Equal(t, painter.Palette{
		Background: 0x000000,
		Data:       0xffffff,
		Found:      0x00ff00,
		Search:     0xff0000,
		Marker:     0x0000ff,
	}, cfg.Palette())
}

func TestLoadConfigSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[general\nwidth = "), 0o644))
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestCheckRejectsInvalidValues(t *testing.T) {
	mutations := map[string]func(*Config){
		"size":    func(c *Config) { c.General.Width = 0 },
		"fps":     func(c *Config) { c.General.FPS = -1 },
		"marker":  func(c *Config) { c.General.MarkerSize = 0 },
		"format":  func(c *Config) { c.General.ExportFormat = "gif" },
		"palette": func(c *Config) { c.General.Palette = "nope" },
		"color": func(c *Config) {
			spec := c.Palettes["classic"]
			spec.Found = "green"
			c.Palettes["classic"] = spec
		},
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			cfg := classicConfig()
			mutate(&cfg)
			cfg.Normalize()
			require.Error(t, cfg.Check())
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("RECTCASE_FPS", "24")
	t.Setenv("RECTCASE_MARKER_SIZE", "9")
	t.Setenv("RECTCASE_BACKUP", "true")
	cfg := classicConfig()
	require.NoError(t, cfg.ApplyEnv())
	require.Equal(t, 24, cfg.General.FPS)
	require.Equal(t, 9, cfg.General.MarkerSize)
	require.True(t, cfg.General.Backup)
	require.Equal(t, 800, cfg.General.Width)

	t.Setenv("RECTCASE_WIDTH", "wide")
	require.Error(t, cfg.ApplyEnv())
}
