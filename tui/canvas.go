package tui

import (
	"github.com/gdamore/tcell/v2"

	. "github.com/JaMo42/rectcase/common"
	"github.com/JaMo42/rectcase/editor"
	"github.com/JaMo42/rectcase/geom"
	"github.com/JaMo42/rectcase/painter"
	"github.com/JaMo42/rectcase/util"
)

// Each cell shows two vertically stacked samples of the canvas, the upper one
// as foreground of this character and the lower one as background.
const halfBlock = '▀'

// Canvas presents a painter's frame buffer on a terminal screen and turns
// terminal events into editor input. The canvas is scaled down to fit the
// screen, the last row is the status bar.
type Canvas struct {
	scr       tcell.Screen
	events    chan tcell.Event
	closed    bool
	width     int
	height    int
	viewport  Rectangle
	status    StatusBar
	presented uint64
	dirty     bool
}

// NewCanvas creates the presentation surface for a width x height canvas.
// It starts reading events from scr until the screen is finalized.
func NewCanvas(scr tcell.Screen, width, height int) *Canvas {
	self := &Canvas{
		scr:    scr,
		events: make(chan tcell.Event, 64),
		width:  width,
		height: height,
		status: NewStatusBar(),
	}
	self.Layout()
	go self.pump()
	return self
}

func (self *Canvas) pump() {
	for {
		ev := self.scr.PollEvent()
		if ev == nil {
			close(self.events)
			return
		}
		self.events <- ev
	}
}

// Layout computes the viewport from the current screen size.
func (self *Canvas) Layout() {
	cols, rows := self.scr.Size()
	width := min(cols, self.width)
	height := min(max(rows-1, 1), util.CeilDiv(self.height, 2))
	self.viewport = NewRectangle(0, 0, max(width, 1), height)
	self.status.Viewport(rows-1, cols)
	self.dirty = true
}

func (self *Canvas) Viewport() Rectangle {
	return self.viewport
}

// PixelAt maps a cell position to the canvas pixel under its upper half.
// Positions outside the viewport are clamped.
func (self *Canvas) PixelAt(x, y int) (geom.Coord, geom.Coord) {
	x = util.Clamp(x-self.viewport.X, 0, self.viewport.Width-1)
	y = util.Clamp(y-self.viewport.Y, 0, self.viewport.Height-1)
	px := x * self.width / self.viewport.Width
	py := 2 * y * self.height / (2 * self.viewport.Height)
	return geom.Coord(min(px, self.width-1)), geom.Coord(min(py, self.height-1))
}

// Poll returns the next pending input without blocking. Once the screen is
// finalized a quit command is returned.
func (self *Canvas) Poll() Optional[editor.Input] {
	for {
		select {
		case ev, ok := <-self.events:
			if !ok {
				if self.closed {
					return None[editor.Input]()
				}
				self.closed = true
				return Some(editor.CommandInput(editor.CommandQuit))
			}
			if input := self.translate(ev); input.IsSome() {
				return input
			}
		default:
			return None[editor.Input]()
		}
	}
}

func (self *Canvas) translate(ev tcell.Event) Optional[editor.Input] {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if command, ok := TranslateKey(ev).Get(); ok {
			return Some(editor.CommandInput(command))
		}
	case *tcell.EventMouse:
		primary, secondary, ok := TranslateButtons(ev.Buttons())
		if !ok {
			break
		}
		x, y := self.PixelAt(ev.Position())
		return Some(editor.PointerInput(x, y, primary, secondary))
	case *tcell.EventResize:
		self.Layout()
		self.scr.Clear()
	}
	return None[editor.Input]()
}

// Closed returns true once the screen stopped delivering events.
func (self *Canvas) Closed() bool {
	return self.closed
}

// SetStatus sets the left and right text of the status bar. If message is
// set the right text is emphasized.
func (self *Canvas) SetStatus(left, right string, message bool) {
	self.status.SetLeft(left)
	self.status.SetRight(right, message)
	self.dirty = true
}

// Present draws the frame buffer if it changed since the last call.
func (self *Canvas) Present(p *painter.Painter) {
	if !self.dirty && p.Version() == self.presented {
		return
	}
	self.presented = p.Version()
	self.dirty = false
	vw, vh := self.viewport.Width, self.viewport.Height
	for row := 0; row < vh; row++ {
		for col := 0; col < vw; col++ {
			x0 := col * self.width / vw
			x1 := (col + 1) * self.width / vw
			top := self.sample(p, x0, x1, 2*row, vh)
			bottom := self.sample(p, x0, x1, 2*row+1, vh)
			style := tcell.StyleDefault.
				Foreground(tcell.NewHexColor(int32(top))).
				Background(tcell.NewHexColor(int32(bottom)))
			self.scr.SetContent(self.viewport.X+col, self.viewport.Y+row, halfBlock, nil, style)
		}
	}
	self.status.Redraw(self.scr)
	self.scr.Show()
}

// sample returns the first color other than the background inside the
// pixels covered by the given half row so thin outlines survive scaling.
func (self *Canvas) sample(p *painter.Painter, x0, x1, halfRow, rows int) painter.Color {
	y0 := halfRow * self.height / (2 * rows)
	y1 := (halfRow + 1) * self.height / (2 * rows)
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	if x0 >= self.width || y0 >= self.height {
		return p.ClearColor()
	}
	x1 = min(x1, self.width)
	y1 = min(y1, self.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if c := p.At(x, y); c != p.ClearColor() {
				return c
			}
		}
	}
	return p.ClearColor()
}

// AskYesNo shows a message box on top of the canvas.
func (self *Canvas) AskYesNo(text string) bool {
	answer := MessageBox(self.scr, self.events, text, []string{"Yes", "No"}, 1) == "Yes"
	self.dirty = true
	self.scr.Clear()
	return answer
}
