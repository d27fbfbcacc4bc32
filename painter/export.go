package painter

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image file format the canvas can be exported as.
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

var Formats = []Format{FormatPNG, FormatBMP, FormatTIFF}

// ParseFormat checks that name is a known format. name is expected to be
// lowercase.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	if name == "tif" {
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("unknown image format: %s", name)
}

// FormatFromPath determines the format from the extension of a file name.
func FormatFromPath(pathname string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(pathname), ".")
	return ParseFormat(strings.ToLower(ext))
}

// Image returns an opaque copy of the canvas.
func (self *Painter) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, self.width, self.height))
	for y := 0; y < self.height; y++ {
		for x := 0; x < self.width; x++ {
			r, g, b := Channels(self.frameBuffer[y*self.width+x])
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

// Export encodes the canvas in the given format.
func (self *Painter) Export(w io.Writer, format Format) error {
	img := self.Image()
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unknown image format: %s", format)
}

// ExportFile writes the canvas to a file, replacing it if it exists.
func (self *Painter) ExportFile(pathname string, format Format) error {
	f, err := os.Create(pathname)
	if err != nil {
		return err
	}
	if err := self.Export(f, format); err != nil {
		f.Close()
		return fmt.Errorf("exporting %s: %w", pathname, err)
	}
	return f.Close()
}
