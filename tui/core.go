// Package tui contains routines for presenting the canvas in a terminal.
package tui

import (
	"fmt"
	"log"
	"reflect"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	. "github.com/JaMo42/rectcase/common"
)

var (
	boxStyle BoxStyle
	Colors   = struct {
		StatusBar,
		Message,
		BoxOutline tcell.Style
	}{
		tcell.StyleDefault.Reverse(true),
		tcell.StyleDefault.Reverse(true).Bold(true),
		tcell.StyleDefault,
	}
)

type BoxStyle struct {
	Vertical    rune
	Horizontal  rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

func BoxStyleFromString(set string) BoxStyle {
	style := BoxStyle{}
	value := reflect.ValueOf(&style)
	fieldCount := reflect.ValueOf(style).NumField()
	runes := []rune(set)
	if fieldCount != len(runes) {
		panic(fmt.Sprintf(
			"BoxStyleFromString: set contains %d symbols, expected %d",
			len(runes),
			fieldCount),
		)
	}
	for i := 0; i < fieldCount; i++ {
		value.Elem().Field(i).SetInt(int64(runes[i]))
	}
	return style
}

func GetBoxStyle(description string) BoxStyle {
	switch description {
	default:
		log.Printf("unknown box style ‘%s’, using rounded", description)
		fallthrough
	case "rounded":
		return BoxStyleFromString("│─╭╮╰╯")
	case "sharp":
		return BoxStyleFromString("│─┌┐└┘")
	case "double":
		return BoxStyleFromString("║═╔╗╚╝")
	case "ascii":
		return BoxStyleFromString("|-++++")
	}
}

// Init creates and initializes the terminal screen.
func Init(cfg *Config) (tcell.Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("could not create screen: %w", err)
	}
	if err := Setup(scr, cfg); err != nil {
		return nil, err
	}
	return scr, nil
}

// Setup initializes an already created screen.
func Setup(scr tcell.Screen, cfg *Config) error {
	boxStyle = GetBoxStyle(cfg.General.BoxStyle)
	if err := scr.Init(); err != nil {
		return fmt.Errorf("could not initialize screen: %w", err)
	}
	if cfg.General.Mouse {
		scr.EnableMouse()
	}
	scr.HideCursor()
	return nil
}

func Quit(scr tcell.Screen) {
	scr.Fini()
}

func Text(scr tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, char := range text {
		scr.SetContent(x, y, char, nil, style)
		x += runewidth.RuneWidth(char)
	}
	return x
}

// TextWithHighlight prints the given strings, highlighting one character.
func TextWithHighlight(
	scr tcell.Screen,
	x, y int,
	text string,
	highlight int,
	normalStyle, highlightStyle tcell.Style,
) int {
	var style tcell.Style
	for i, char := range []rune(text) {
		if i == highlight {
			style = highlightStyle
		} else {
			style = normalStyle
		}
		scr.SetContent(x, y, char, nil, style)
		x += runewidth.RuneWidth(char)
	}
	return x
}

func HLine(scr tcell.Screen, x, y int, width int, char rune, style tcell.Style) {
	for col := x; col < x+width; col++ {
		scr.SetContent(col, y, char, nil, style)
	}
}

func VLine(scr tcell.Screen, x, y int, height int, char rune, style tcell.Style) {
	for row := y; row < y+height; row++ {
		scr.SetContent(x, row, char, nil, style)
	}
}

func Box(scr tcell.Screen, x, y, width, height int, style tcell.Style) {
	right := x + width - 1
	bottom := y + height - 1
	scr.SetContent(x, y, boxStyle.TopLeft, nil, style)
	scr.SetContent(right, y, boxStyle.TopRight, nil, style)
	scr.SetContent(x, bottom, boxStyle.BottomLeft, nil, style)
	scr.SetContent(right, bottom, boxStyle.BottomRight, nil, style)
	HLine(scr, x+1, y, width-2, boxStyle.Horizontal, style)
	HLine(scr, x+1, bottom, width-2, boxStyle.Horizontal, style)
	VLine(scr, x, y+1, height-2, boxStyle.Vertical, style)
	VLine(scr, right, y+1, height-2, boxStyle.Vertical, style)
}

func FillRect(scr tcell.Screen, x, y, width, height int, char rune, style tcell.Style) {
	for row := y; row < y+height; row++ {
		HLine(scr, x, row, width, char, style)
	}
}
