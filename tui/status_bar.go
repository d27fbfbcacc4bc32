package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type StatusBar struct {
	left    string
	right   string
	message bool
	width   int
	y       int
}

func NewStatusBar() StatusBar {
	return StatusBar{}
}

func (self *StatusBar) SetLeft(text string) {
	self.left = text
}

// SetRight sets the right text. If message is set it is drawn emphasized.
func (self *StatusBar) SetRight(text string, message bool) {
	self.right = text
	self.message = message
}

func (self *StatusBar) Viewport(y, width int) {
	self.y = y
	self.width = width
}

func (self *StatusBar) Redraw(scr tcell.Screen) {
	HLine(scr, 0, self.y, self.width, ' ', Colors.StatusBar)
	right := runewidth.Truncate(self.right, self.width-2, "…")
	width := runewidth.StringWidth(right)
	left := runewidth.Truncate(self.left, self.width-width-3, "…")
	Text(scr, 1, self.y, left, Colors.StatusBar)
	style := Colors.StatusBar
	if self.message {
		style = Colors.Message
	}
	Text(scr, self.width-1-width, self.y, right, style)
}
