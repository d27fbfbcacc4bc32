package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/JaMo42/rectcase/util"
)

type mbButton struct {
	label     string
	highlight int
	x         int
	end       int
}

type messageBox struct {
	scr      tcell.Screen
	text     string
	buttons  []mbButton
	selected int
	keys     map[rune]int
	rect     Rectangle
	buttonsY int
}

// MessageBox shows text with a row of buttons and returns the label of the
// chosen button, or an empty string if the box was dismissed. Events are
// read from the given channel.
func MessageBox(
	scr tcell.Screen,
	events <-chan tcell.Event,
	text string,
	buttons []string,
	initialSelection int,
) string {
	keys := map[rune]int{}
	btns := make([]mbButton, len(buttons))
	for i, label := range buttons {
		highlight := -1
		for runeIdx, c := range []rune(label) {
			c = unicode.ToLower(c)
			if _, used := keys[c]; !used {
				keys[c] = i
				highlight = runeIdx
				break
			}
		}
		btns[i] = mbButton{label: label, highlight: highlight}
	}
	mb := messageBox{
		scr:      scr,
		text:     text,
		buttons:  btns,
		selected: initialSelection,
		keys:     keys,
	}
	return mb.Run(events)
}

func (self *messageBox) Run(events <-chan tcell.Event) string {
	self.Layout()
	self.Redraw()
	self.scr.Show()
	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return self.buttons[self.selected].label
			case tcell.KeyLeft:
				self.Select(util.Clamp(self.selected-1, 0, len(self.buttons)-1))
			case tcell.KeyRight:
				self.Select(util.Clamp(self.selected+1, 0, len(self.buttons)-1))
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return ""
			case tcell.KeyRune:
				if button, valid := self.keys[unicode.ToLower(ev.Rune())]; valid {
					return self.buttons[button].label
				}
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			if y != self.buttonsY || ev.Buttons()&tcell.Button1 == 0 {
				break
			}
			for _, b := range self.buttons {
				if x >= b.x && x < b.end {
					return b.label
				}
			}
		case *tcell.EventResize:
			self.Layout()
			self.Redraw()
		}
		self.scr.Show()
	}
	return ""
}

func (self *messageBox) Layout() {
	screenWidth, screenHeight := self.scr.Size()
	contentWidth := 2
	for _, b := range self.buttons {
		contentWidth += 2 + runewidth.StringWidth(b.label)
	}
	if textWidth := runewidth.StringWidth(self.text); textWidth > contentWidth {
		contentWidth = textWidth
	}
	width := contentWidth + 2
	height := 5
	x := (screenWidth - width) / 2
	y := (screenHeight - height) / 2
	self.rect = NewRectangle(x, y, width, height)
	x = self.rect.Right() - 1
	self.buttonsY = y + height - 2
	for i := len(self.buttons) - 1; i >= 0; i-- {
		b := &self.buttons[i]
		b.end = x
		x -= 2 + runewidth.StringWidth(b.label)
		b.x = x
	}
}

func (self *messageBox) Redraw() {
	x, y, width, height := self.rect.Parts()
	Box(self.scr, x, y, width, height, Colors.BoxOutline)
	FillRect(self.scr, x+1, y+1, width-2, height-2, ' ', tcell.StyleDefault)
	Text(self.scr, x+1, y+1, self.text, tcell.StyleDefault)
	for i := range self.buttons {
		self.DrawButton(i)
	}
}

func (self *messageBox) DrawButton(idx int) {
	button := &self.buttons[idx]
	var normalStyle, highlightStyle tcell.Style
	if idx == self.selected {
		normalStyle = tcell.StyleDefault.Reverse(true)
		highlightStyle = normalStyle.Background(tcell.ColorRed)
	} else {
		normalStyle = tcell.StyleDefault
		highlightStyle = normalStyle.Foreground(tcell.ColorRed)
	}
	x := button.x
	self.scr.SetContent(x, self.buttonsY, ' ', nil, normalStyle)
	x = TextWithHighlight(
		self.scr,
		x+1,
		self.buttonsY,
		button.label,
		button.highlight,
		normalStyle,
		highlightStyle,
	)
	self.scr.SetContent(x, self.buttonsY, ' ', nil, normalStyle)
}

func (self *messageBox) Select(idx int) {
	old := self.selected
	self.selected = idx
	self.DrawButton(old)
	self.DrawButton(idx)
}
