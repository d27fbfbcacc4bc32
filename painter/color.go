package painter

import "math"

// Color is a 0x00RRGGBB pixel value.
type Color = uint32

const colorChannelSize = 8

// DefaultBackground is the color of a freshly created canvas.
const DefaultBackground Color = 0x00FFFFFF

// RGB packs three 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<(colorChannelSize<<1) | Color(g)<<colorChannelSize | Color(b)
}

// Channels splits a Color into its red, green and blue channel.
func Channels(c Color) (uint8, uint8, uint8) {
	return uint8(c >> (colorChannelSize << 1)), uint8(c >> colorChannelSize), uint8(c)
}

// ColorFromHSV converts a hue in degrees and saturation and value in percent
// to a Color. Channel values are truncated, not rounded.
func ColorFromHSV(h, s, v float64) Color {
	s /= 100
	v /= 100
	sector := math.Floor(h / 60)
	f := h/60 - sector
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	var r, g, b float64
	switch (int(sector)%6 + 6) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return RGB(scale(r), scale(g), scale(b))
}

// scale maps [0, 1] to [0, 255] by truncation.
func scale(x float64) uint8 {
	return uint8(x * 255)
}
