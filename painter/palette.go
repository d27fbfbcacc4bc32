package painter

// Palette holds the colors the editor draws with.
type Palette struct {
	Background Color
	Data       Color
	Found      Color
	Search     Color
	Marker     Color
}

// ClassicPalette is black data rectangles, green found rectangles, a red
// search rectangle and a blue marker on white.
var ClassicPalette = Palette{
	Background: DefaultBackground,
	Data:       0x00000000,
	Found:      0x0000ff00,
	Search:     0x00ff0000,
	Marker:     0x000000ff,
}
