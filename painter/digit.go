package painter

import "fmt"

const (
	glyphRows = 8
	glyphCols = 8
	// glyphBlockSize is the side length of the square a single font pixel is
	// scaled to.
	glyphBlockSize = 2
	glyphWidth     = glyphCols * glyphBlockSize
	glyphHeight    = glyphRows * glyphBlockSize
)

// Glyph is an 8x8 bitmap stored row major, bit 0 is the top left pixel.
type Glyph uint64

// Bit returns whether the font pixel at the given row and column is set.
func (self Glyph) Bit(row, col int) bool {
	return self>>(row*glyphCols+col)&1 == 1
}

var digitGlyphs = [10]Glyph{
	0x3c4242424242423c,
	0x7820202020203830,
	0x7c0c183060606438,
	0x3c2220301830223c,
	0x7020203e22242830,
	0x1e304040301e027e,
	0x3c46463e060c1830,
	0x04040c183060627e,
	0x3c4242423c42423c,
	0x0c1830607c62623c,
}

// DigitGlyph returns the glyph for a decimal digit.
func DigitGlyph(digit int) Glyph {
	if digit < 0 || digit > 9 {
		panic(fmt.Sprintf("DigitGlyph: not a decimal digit: %d", digit))
	}
	return digitGlyphs[digit]
}

// Digits returns the decimal digits of n, least significant first.
func Digits(n int) []int {
	if n < 0 {
		panic(fmt.Sprintf("Digits: negative value %d", n))
	}
	if n < 10 {
		return []int{n}
	}
	digits := []int{}
	for n != 0 {
		digits = append(digits, n%10)
		n /= 10
	}
	return digits
}

// NumeralWidth returns the width in pixels of n when drawn with DrawNumeral.
func NumeralWidth(n int) int {
	return len(Digits(n)) * glyphWidth
}
