package tui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	. "github.com/JaMo42/rectcase/common"
	"github.com/JaMo42/rectcase/editor"
	"github.com/JaMo42/rectcase/geom"
	"github.com/JaMo42/rectcase/painter"
)

// newTestCanvas creates a 40x20 pixel canvas on a 20x11 cell screen, so every
// cell covers 2x2 pixels.
func newTestCanvas(t *testing.T) (*Canvas, tcell.SimulationScreen) {
	scr := tcell.NewSimulationScreen("")
	cfg := DefaultConfig()
	require.NoError(t, Setup(scr, &cfg))
	scr.SetSize(20, 11)
	t.Cleanup(scr.Fini)
	return NewCanvas(scr, 40, 20), scr
}

func pollInput(t *testing.T, c *Canvas) editor.Input {
	t.Helper()
	var input editor.Input
	require.Eventually(t, func() bool {
		got, ok := c.Poll().Get()
		input = got
		return ok
	}, time.Second, time.Millisecond)
	return input
}

func TestViewportFitsScreen(t *testing.T) {
	c, _ := newTestCanvas(t)
	require.Equal(t, NewRectangle(0, 0, 20, 10), c.Viewport())
}

func TestPixelAt(t *testing.T) {
	c, _ := newTestCanvas(t)
	x, y := c.PixelAt(2, 3)
	require.Equal(t, geom.Coord(4), x)
	require.Equal(t, geom.Coord(6), y)

	x, y = c.PixelAt(100, 100)
	require.Equal(t, geom.Coord(38), x)
	require.Equal(t, geom.Coord(18), y)
}

func TestPresentSamplesHalfBlocks(t *testing.T) {
	c, scr := newTestCanvas(t)
	p := painter.New(40, 20)
	p.DrawPixel(0xff0000, 5, 6)
	p.DrawPixel(0x00ff00, 8, 9)
	c.Present(p)

	mainc, _, style, _ := scr.GetContent(2, 3)
	require.Equal(t, halfBlock, mainc)
	fg, bg, _ := style.Decompose()
	require.Equal(t, tcell.NewHexColor(0xff0000), fg)
	require.Equal(t, tcell.NewHexColor(int32(painter.DefaultBackground)), bg)

	_, _, style, _ = scr.GetContent(4, 4)
	fg, bg, _ = style.Decompose()
	require.Equal(t, tcell.NewHexColor(int32(painter.DefaultBackground)), fg)
	require.Equal(t, tcell.NewHexColor(0x00ff00), bg)
}

func TestPollTranslatesMouse(t *testing.T) {
	c, scr := newTestCanvas(t)
	scr.InjectMouse(2, 3, tcell.Button2, tcell.ModNone)
	require.Equal(t, editor.PointerInput(4, 6, false, true), pollInput(t, c))

	scr.InjectMouse(5, 5, tcell.ButtonNone, tcell.ModNone)
	require.Equal(t, editor.PointerInput(10, 10, false, false), pollInput(t, c))
}

func TestPollTranslatesKeys(t *testing.T) {
	c, scr := newTestCanvas(t)
	scr.InjectKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl)
	require.Equal(t, editor.CommandInput(editor.CommandUndo), pollInput(t, c))
	scr.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	require.Equal(t, editor.CommandInput(editor.CommandSave), pollInput(t, c))
}

func TestTranslateButtons(t *testing.T) {
	primary, secondary, ok := TranslateButtons(tcell.Button1)
	require.True(t, ok)
	require.True(t, primary)
	require.False(t, secondary)

	_, _, ok = TranslateButtons(tcell.WheelUp)
	require.False(t, ok)
}

func TestRectangle(t *testing.T) {
	r := NewRectangle(1, 2, 3, 4)
	require.Equal(t, 4, r.Right())
	require.Equal(t, 6, r.Bottom())
	require.True(t, r.Contains(3, 5))
	require.False(t, r.Contains(4, 5))
}
