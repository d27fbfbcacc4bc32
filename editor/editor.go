// Package editor interprets pointer gestures into data and search
// rectangles, keeps the set of data rectangles intersecting the search
// rectangle up to date and mirrors every change onto a painter.
package editor

import (
	"errors"
	"fmt"

	. "github.com/JaMo42/rectcase/common"
	"github.com/JaMo42/rectcase/geom"
	"github.com/JaMo42/rectcase/painter"
	"github.com/JaMo42/rectcase/testcase"
	"github.com/JaMo42/rectcase/util"
)

// ErrNoSearchRect is returned when saving a session without a search
// rectangle.
var ErrNoSearchRect = errors.New("search area is mandatory")

// DefaultMarkerSize is the side length of the square drawn at the start of a
// gesture.
const DefaultMarkerSize = 5

// Mode selects what kind of rectangle the current gesture produces.
type Mode int

const (
	ModeData Mode = iota
	ModeSearch
)

func (self Mode) String() string {
	if self == ModeSearch {
		return "search"
	}
	return "data"
}

// Anchor is the point a gesture started at.
type Anchor struct {
	X, Y geom.Coord
}

// UndoResult describes what an undo did.
type UndoResult int

const (
	UndoNothing UndoResult = iota
	UndoCancelled
	UndoRemoved
)

type Editor struct {
	painter    *painter.Painter
	palette    painter.Palette
	markerSize geom.Coord

	dataRects  []geom.Rect
	searchRect Optional[geom.Rect]
	found      testcase.FoundSet

	pending       Optional[Anchor]
	mode          Mode
	gestureActive bool
	changed       bool
}

// New creates an empty session drawing onto p.
func New(p *painter.Painter, palette painter.Palette) *Editor {
	return &Editor{
		painter:    p,
		palette:    palette,
		markerSize: DefaultMarkerSize,
		searchRect: None[geom.Rect](),
		found:      testcase.NewFoundSet(),
		pending:    None[Anchor](),
		mode:       ModeData,
	}
}

// FromCase creates a session seeded with a loaded test case and draws it.
// The found set is recomputed from the rectangles; the returned error is
// non-nil if the stored set disagreed, the editor is usable either way and
// reports itself as changed.
func FromCase(p *painter.Painter, palette painter.Palette, tc testcase.TestCase) (*Editor, error) {
	self := New(p, palette)
	self.dataRects = append([]geom.Rect{}, tc.DataRects...)
	self.searchRect = Some(tc.SearchRect)
	self.found = testcase.Compute(self.dataRects, tc.SearchRect)
	var err error
	if verr := tc.Validate(); verr != nil {
		err = fmt.Errorf("stored found set is stale, recomputed: %w", verr)
		self.changed = true
	}
	self.Redraw()
	return self, err
}

func (self *Editor) SetMarkerSize(size geom.Coord) {
	self.markerSize = size
}

// Rects returns a copy of the data rectangles.
func (self *Editor) Rects() []geom.Rect {
	return append([]geom.Rect{}, self.dataRects...)
}

func (self *Editor) SearchRect() Optional[geom.Rect] {
	return self.searchRect
}

// Found returns the indices of the found rectangles in ascending order.
func (self *Editor) Found() []int {
	return self.found.Sorted()
}

func (self *Editor) Pending() Optional[Anchor] {
	return self.pending
}

// Mode returns the mode of the pending gesture.
func (self *Editor) Mode() Mode {
	return self.mode
}

// Changed returns true if the session was modified since it was created or
// last saved.
func (self *Editor) Changed() bool {
	return self.changed
}

// Handle dispatches a pointer event or an undo command. Other commands are
// left to the caller and false is returned for them.
func (self *Editor) Handle(input Input) bool {
	if input.Pointer {
		self.Pointer(input.X, input.Y, input.Primary, input.Secondary)
		return true
	}
	if input.Command == CommandUndo {
		self.Undo()
		return true
	}
	return false
}

// Pointer processes the pointer state of one tick. A gesture begins on the
// first tick a button is held and ends on the first tick no button is held.
// The secondary button starts a search gesture.
func (self *Editor) Pointer(x, y geom.Coord, primary, secondary bool) {
	bounds := self.painter.Bounds()
	x = util.Clamp(x, bounds.Left, bounds.Right)
	y = util.Clamp(y, bounds.Top, bounds.Bottom)
	if primary || secondary {
		if self.gestureActive {
			return
		}
		self.gestureActive = true
		if self.pending.IsSome() {
			return
		}
		if secondary {
			self.mode = ModeSearch
		} else {
			self.mode = ModeData
		}
		self.beginEdit(x, y)
		return
	}
	self.gestureActive = false
	if self.pending.IsSome() {
		self.finishEdit(x, y)
	}
}

func (self *Editor) beginEdit(x, y geom.Coord) {
	self.drawMarker(self.palette.Marker, Anchor{x, y})
	self.pending = Some(Anchor{x, y})
}

func (self *Editor) finishEdit(x, y geom.Coord) {
	anchor := self.clearPending()
	rect := geom.Normalize(anchor.X, anchor.Y, x, y)
	switch self.mode {
	case ModeData:
		self.addRect(rect)
	case ModeSearch:
		self.setSearchRect(rect)
	}
	self.mode = ModeData
	self.changed = true
}

// clearPending erases the marker of the pending gesture and returns its
// anchor.
func (self *Editor) clearPending() Anchor {
	anchor := self.pending.Take().Unwrap()
	self.drawMarker(self.painter.ClearColor(), anchor)
	return anchor
}

func (self *Editor) addRect(rect geom.Rect) {
	index := len(self.dataRects)
	color := self.palette.Data
	self.searchRect.Then(func(search geom.Rect) {
		if rect.IntersectsWith(search) {
			self.found.Add(index)
			color = self.palette.Found
		}
	})
	self.dataRects = append(self.dataRects, rect)
	self.drawRect(color, index)
}

func (self *Editor) setSearchRect(rect geom.Rect) {
	self.searchRect.Then(func(old geom.Rect) {
		self.drawOutline(self.painter.ClearColor(), old)
	})
	self.searchRect = Some(rect)
	self.found = testcase.NewFoundSet()
	for i := range self.dataRects {
		if self.dataRects[i].IntersectsWith(rect) {
			self.found.Add(i)
			self.drawRect(self.palette.Found, i)
		} else {
			self.drawRect(self.palette.Data, i)
		}
	}
	self.drawOutline(self.palette.Search, rect)
}

// Undo cancels the pending gesture if there is one, otherwise it removes the
// most recently added data rectangle. Search rectangle changes can not be
// undone.
func (self *Editor) Undo() UndoResult {
	result := UndoNothing
	if self.pending.IsSome() {
		self.clearPending()
		result = UndoCancelled
	} else if len(self.dataRects) != 0 {
		index := len(self.dataRects) - 1
		self.drawRect(self.painter.ClearColor(), index)
		self.dataRects = self.dataRects[:index]
		self.found.Remove(index)
		self.changed = true
		result = UndoRemoved
	}
	if result != UndoNothing {
		self.Redraw()
	}
	self.gestureActive = false
	self.mode = ModeData
	return result
}

// Redraw paints every data rectangle in its current color and the search
// rectangle on top. Erasing a shape may have cleared pixels of overlapping
// shapes which this repairs.
func (self *Editor) Redraw() {
	for i := range self.dataRects {
		if self.found.Contains(i) {
			self.drawRect(self.palette.Found, i)
		} else {
			self.drawRect(self.palette.Data, i)
		}
	}
	self.searchRect.Then(func(search geom.Rect) {
		self.drawOutline(self.palette.Search, search)
	})
}

// TestCase creates a test case from the current session.
func (self *Editor) TestCase() (testcase.TestCase, error) {
	search, ok := self.searchRect.Get()
	if !ok {
		return testcase.TestCase{}, ErrNoSearchRect
	}
	return testcase.TestCase{
		DataRects:  self.Rects(),
		SearchRect: search,
		Found:      self.found.Clone(),
	}, nil
}

// Save writes the session to pathname.
func (self *Editor) Save(pathname string) error {
	tc, err := self.TestCase()
	if err != nil {
		return err
	}
	if err := tc.Save(pathname); err != nil {
		return err
	}
	self.changed = false
	return nil
}

func (self *Editor) drawMarker(color painter.Color, anchor Anchor) {
	bounds := self.painter.Bounds()
	canvas := geom.Rect{
		Top:    bounds.Top,
		Left:   bounds.Left,
		Bottom: bounds.Bottom + 1,
		Right:  bounds.Right + 1,
	}
	marker := geom.Square(anchor.X, anchor.Y, self.markerSize)
	self.painter.DrawFilledRect(color, marker.Clip(canvas))
}

// drawRect draws the outline of a data rectangle and its index.
func (self *Editor) drawRect(color painter.Color, index int) {
	rect := self.dataRects[index]
	x, y := rect.Center()
	self.drawOutline(color, rect)
	self.painter.DrawNumeral(color, x, y, index)
}

// drawOutline draws the visible part of a rectangle outline. Rectangles from
// a loaded test case may exceed the canvas.
func (self *Editor) drawOutline(color painter.Color, rect geom.Rect) {
	bounds := self.painter.Bounds()
	if bounds.ContainsRect(rect) {
		self.painter.DrawHollowRect(color, rect)
		return
	}
	visible := rect.Clip(bounds)
	if visible.Empty() {
		return
	}
	if rect.Top >= bounds.Top {
		self.painter.DrawHLine(color, visible.Left, visible.Right, rect.Top)
	}
	if rect.Bottom <= bounds.Bottom {
		self.painter.DrawHLine(color, visible.Left, visible.Right, rect.Bottom)
	}
	if rect.Left >= bounds.Left {
		self.painter.DrawVLine(color, visible.Top, visible.Bottom, rect.Left)
	}
	if rect.Right <= bounds.Right {
		self.painter.DrawVLine(color, visible.Top, visible.Bottom, rect.Right)
	}
}
