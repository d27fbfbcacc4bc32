package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	. "github.com/JaMo42/rectcase/common"
	"github.com/JaMo42/rectcase/editor"
	"github.com/JaMo42/rectcase/painter"
	"github.com/JaMo42/rectcase/tui"
)

// App runs an editing session in the terminal.
type App struct {
	cfg     *Config
	canvas  *tui.Canvas
	painter *painter.Painter
	editor  *editor.Editor
	file    CaseFile
	message Optional[string]
	quit    bool
}

func NewApp(scr tcell.Screen, cfg *Config, file CaseFile, e *editor.Editor, p *painter.Painter) *App {
	width, height := p.Size()
	return &App{
		cfg:     cfg,
		canvas:  tui.NewCanvas(scr, width, height),
		painter: p,
		editor:  e,
		file:    file,
		message: None[string](),
	}
}

// Run processes input and presents the canvas at the configured frame rate
// until the user quits. It returns true if the session had no unsaved
// changes when it ended.
func (self *App) Run() bool {
	ticker := time.NewTicker(time.Second / time.Duration(self.cfg.General.FPS))
	defer ticker.Stop()
	self.present()
	for !self.quit {
		<-ticker.C
		self.Tick()
	}
	return !self.editor.Changed()
}

// Tick handles all input received since the last tick and presents the
// result.
func (self *App) Tick() {
	if tui.Interrupted() {
		self.requestQuit()
	}
	for !self.quit {
		input, ok := self.canvas.Poll().Get()
		if !ok {
			break
		}
		self.handle(input)
	}
	if !self.quit {
		self.present()
	}
}

func (self *App) Done() bool {
	return self.quit
}

func (self *App) handle(input editor.Input) {
	if input.Pointer {
		if input.Primary || input.Secondary {
			self.message = None[string]()
		}
		self.editor.Handle(input)
		return
	}
	switch input.Command {
	case editor.CommandUndo:
		switch self.editor.Undo() {
		case editor.UndoNothing:
			self.setMessage("Nothing to undo")
		case editor.UndoCancelled:
			self.setMessage("Cancelled")
		case editor.UndoRemoved:
			self.setMessage("Removed last rectangle")
		}
	case editor.CommandSave:
		self.save()
	case editor.CommandExport:
		self.export()
	case editor.CommandQuit:
		self.requestQuit()
	}
}

func (self *App) setMessage(format string, args ...any) {
	self.message = Some(fmt.Sprintf(format, args...))
}

func (self *App) save() {
	err := self.file.Save(self.editor)
	if errors.Is(err, editor.ErrNoSearchRect) {
		self.setMessage("Not saved: %s", err)
		return
	} else if err != nil {
		log.Printf("%s: saving %s: %s", InvocationName, self.file.Dest(), err)
		self.setMessage("Save failed: %s", err)
		return
	}
	self.setMessage("Saved %s", self.file.Dest())
	if err := runPostSaveCommand(self.cfg.General.PostSaveCommand, self.file.Dest()); err != nil {
		log.Printf("%s: post-save command: %s", InvocationName, err)
		self.setMessage("Saved, post-save command failed: %s", err)
	}
}

func (self *App) export() {
	format := self.cfg.ExportFormat()
	pathname := self.file.ExportPath(format)
	if err := self.painter.ExportFile(pathname, format); err != nil {
		log.Printf("%s: exporting %s: %s", InvocationName, pathname, err)
		self.setMessage("Export failed: %s", err)
		return
	}
	self.setMessage("Exported %s", pathname)
}

func (self *App) requestQuit() {
	if self.editor.Changed() && !self.canvas.Closed() &&
		!self.canvas.AskYesNo("There are unsaved changes. Quit anyway?") {
		return
	}
	self.quit = true
}

// status returns the summary shown on the left of the status bar.
func (self *App) status() string {
	modified := ""
	if self.editor.Changed() {
		modified = " [+]"
	}
	search := "no search area"
	if self.editor.SearchRect().IsSome() {
		search = fmt.Sprintf("%d found", len(self.editor.Found()))
	}
	state := ""
	if anchor, ok := self.editor.Pending().Get(); ok {
		state = fmt.Sprintf("  %s from %d,%d", self.editor.Mode(), anchor.X, anchor.Y)
	}
	return fmt.Sprintf(
		"%s%s  %d rectangles, %s%s",
		self.file.Dest(), modified, len(self.editor.Rects()), search, state,
	)
}

func (self *App) present() {
	if message, ok := self.message.Get(); ok {
		self.canvas.SetStatus(self.status(), message, true)
	} else {
		self.canvas.SetStatus(self.status(), tui.KeyHelp, false)
	}
	self.canvas.Present(self.painter)
}
