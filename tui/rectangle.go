package tui

// Rectangle is an area of terminal cells.
type Rectangle struct {
	X, Y, Width, Height int
}

func NewRectangle(x, y, width, height int) Rectangle {
	return Rectangle{x, y, width, height}
}

func (self *Rectangle) Bottom() int {
	return self.Y + self.Height
}

func (self *Rectangle) Right() int {
	return self.X + self.Width
}

func (self *Rectangle) Parts() (int, int, int, int) {
	return self.X, self.Y, self.Width, self.Height
}

func (self *Rectangle) Contains(x, y int) bool {
	return x >= self.X && y >= self.Y && x < self.Right() && y < self.Bottom()
}
