// Package geom contains the rectangle type shared by the painter, the editor
// and the test case format.
package geom

// Coord is a pixel coordinate. It is signed so intermediate values, for
// example when centering a label, may go negative.
type Coord = int64

// Rect is an axis aligned rectangle. Consumers expect Left <= Right and
// Top <= Bottom but this is not enforced, use Normalize to build one from two
// arbitrary corners.
type Rect struct {
	Top    Coord `json:"top"`
	Left   Coord `json:"left"`
	Bottom Coord `json:"bottom"`
	Right  Coord `json:"right"`
}

// Normalize creates the rectangle spanned by two corner points, independent
// of the order they are given in.
func Normalize(ax, ay, bx, by Coord) Rect {
	if ax > bx {
		ax, bx = bx, ax
	}
	if ay > by {
		ay, by = by, ay
	}
	return Rect{Top: ay, Left: ax, Bottom: by, Right: bx}
}

// IntersectsWith returns true if the interiors of both rectangles overlap.
// Rectangles that only share an edge or a corner do not intersect.
func (self Rect) IntersectsWith(other Rect) bool {
	maxLeft := max(self.Left, other.Left)
	minRight := min(self.Right, other.Right)
	maxTop := max(self.Top, other.Top)
	minBottom := min(self.Bottom, other.Bottom)
	return maxLeft < minRight && maxTop < minBottom
}

// Width returns Right - Left.
func (self Rect) Width() Coord {
	return self.Right - self.Left
}

// Height returns Bottom - Top.
func (self Rect) Height() Coord {
	return self.Bottom - self.Top
}

// Center returns the center point, rounded towards the top left.
func (self Rect) Center() (Coord, Coord) {
	return self.Left + self.Width()/2, self.Top + self.Height()/2
}

// Contains returns true if the point lies inside the rectangle, edges included.
func (self Rect) Contains(x, y Coord) bool {
	return x >= self.Left && x <= self.Right && y >= self.Top && y <= self.Bottom
}

// Clip restricts the rectangle to the given bounds. The result may be
// inverted (empty) if both do not overlap.
func (self Rect) Clip(bounds Rect) Rect {
	return Rect{
		Top:    max(self.Top, bounds.Top),
		Left:   max(self.Left, bounds.Left),
		Bottom: min(self.Bottom, bounds.Bottom),
		Right:  min(self.Right, bounds.Right),
	}
}

// Empty returns true if the rectangle does not contain any point.
func (self Rect) Empty() bool {
	return self.Left > self.Right || self.Top > self.Bottom
}

// Translate moves the rectangle by the given offset.
func (self Rect) Translate(dx, dy Coord) Rect {
	return Rect{
		Top:    self.Top + dy,
		Left:   self.Left + dx,
		Bottom: self.Bottom + dy,
		Right:  self.Right + dx,
	}
}

// Square creates a size x size rectangle with the given top left corner.
func Square(x, y, size Coord) Rect {
	return Rect{Top: y, Left: x, Bottom: y + size, Right: x + size}
}

// ContainsRect returns true if other lies completely inside the rectangle.
func (self Rect) ContainsRect(other Rect) bool {
	return self.Contains(other.Left, other.Top) && self.Contains(other.Right, other.Bottom)
}
