// Package painter implements a software rasterizer drawing rectangle
// outlines, filled squares and numbers into a flat pixel buffer.
package painter

import (
	"fmt"

	"github.com/JaMo42/rectcase/geom"
)

type Coord = geom.Coord

// Painter owns a row major frame buffer. All coordinates passed to the
// drawing routines must lie inside the canvas, DrawNumeral being the only
// routine that clips.
type Painter struct {
	frameBuffer []Color
	width       int
	height      int
	background  Color
	version     uint64
}

// New creates a painter with a canvas filled with DefaultBackground.
func New(width, height int) *Painter {
	return NewWithBackground(width, height, DefaultBackground)
}

// NewWithBackground creates a painter with a canvas filled with the given
// color, which is also used as the clear color.
func NewWithBackground(width, height int, background Color) *Painter {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("painter: invalid canvas size %dx%d", width, height))
	}
	buffer := make([]Color, width*height)
	for i := range buffer {
		buffer[i] = background
	}
	return &Painter{
		frameBuffer: buffer,
		width:       width,
		height:      height,
		background:  background,
	}
}

// ClearColor returns the background color. Drawing a shape in this color
// erases it.
func (self *Painter) ClearColor() Color {
	return self.background
}

func (self *Painter) Size() (int, int) {
	return self.width, self.height
}

// Bounds returns the canvas as an inclusive rectangle.
func (self *Painter) Bounds() geom.Rect {
	return geom.Rect{
		Top:    0,
		Left:   0,
		Bottom: Coord(self.height - 1),
		Right:  Coord(self.width - 1),
	}
}

// At returns the color of a single pixel.
func (self *Painter) At(x, y int) Color {
	return self.frameBuffer[self.index(Coord(x), Coord(y))]
}

// Version changes every time the frame buffer is written to.
func (self *Painter) Version() uint64 {
	return self.version
}

// Clear fills the whole canvas with the clear color.
func (self *Painter) Clear() {
	for i := range self.frameBuffer {
		self.frameBuffer[i] = self.background
	}
	self.version++
}

func (self *Painter) index(x, y Coord) int {
	if x < 0 || y < 0 || x >= Coord(self.width) || y >= Coord(self.height) {
		panic(fmt.Sprintf(
			"painter: pixel (%d, %d) outside of %dx%d canvas",
			x, y, self.width, self.height,
		))
	}
	return int(y)*self.width + int(x)
}

func (self *Painter) DrawPixel(color Color, x, y Coord) {
	self.frameBuffer[self.index(x, y)] = color
	self.version++
}

// DrawHLine paints the pixels x0 through x1 (inclusive) of row y.
func (self *Painter) DrawHLine(color Color, x0, x1, y Coord) {
	for x := x0; x <= x1; x++ {
		self.DrawPixel(color, x, y)
	}
}

// DrawVLine paints the pixels y0 through y1 (inclusive) of column x.
func (self *Painter) DrawVLine(color Color, y0, y1, x Coord) {
	for y := y0; y <= y1; y++ {
		self.DrawPixel(color, x, y)
	}
}

// DrawFilledRect fills the rectangle, excluding the bottom row and right
// column so adjacent squares do not overlap.
func (self *Painter) DrawFilledRect(color Color, rect geom.Rect) {
	for y := rect.Top; y < rect.Bottom; y++ {
		if rect.Left < rect.Right {
			self.DrawHLine(color, rect.Left, rect.Right-1, y)
		}
	}
}

// DrawHollowRect paints the four border lines of the rectangle, corners
// included.
func (self *Painter) DrawHollowRect(color Color, rect geom.Rect) {
	self.DrawHLine(color, rect.Left, rect.Right, rect.Top)
	self.DrawHLine(color, rect.Left, rect.Right, rect.Bottom)
	self.DrawVLine(color, rect.Top, rect.Bottom, rect.Left)
	self.DrawVLine(color, rect.Top, rect.Bottom, rect.Right)
}

// DrawNumeral draws the decimal representation of value centered on (x, y).
// Parts of the number outside the canvas are skipped.
func (self *Painter) DrawNumeral(color Color, x, y Coord, value int) {
	digits := Digits(value)
	x -= Coord(glyphWidth*len(digits)) / 2
	y -= glyphHeight / 2
	for i := len(digits) - 1; i >= 0; i-- {
		self.drawGlyph(color, x, y, DigitGlyph(digits[i]))
		x += glyphWidth
	}
}

func (self *Painter) drawGlyph(color Color, x, y Coord, glyph Glyph) {
	canvas := geom.Rect{
		Top:    0,
		Left:   0,
		Bottom: Coord(self.height),
		Right:  Coord(self.width),
	}
	for row := 0; row < glyphRows; row++ {
		for col := 0; col < glyphCols; col++ {
			if !glyph.Bit(row, col) {
				continue
			}
			block := geom.Square(
				x+glyphBlockSize*Coord(col),
				y+glyphBlockSize*Coord(row),
				glyphBlockSize,
			)
			self.DrawFilledRect(color, block.Clip(canvas))
		}
	}
}
