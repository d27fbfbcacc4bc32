package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	. "github.com/JaMo42/rectcase/common"
	"github.com/JaMo42/rectcase/editor"
	"github.com/JaMo42/rectcase/geom"
	"github.com/JaMo42/rectcase/painter"
	"github.com/JaMo42/rectcase/tui"
)

const (
	appName    = "rectcase"
	appVersion = "0.1.0"
)

type Options struct {
	configFile   string
	logFile      string
	backup       bool
	applyBackup  bool
	exportImage  string
	check        bool
	dumpPalettes bool
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "usage: %s [options] <case-file> [<dest-case-file>]\n", InvocationName)
	flag.PrintDefaults()
}

func parseArgs() (Options, []string) {
	InvocationName = os.Args[0]
	showVersion := false
	var options Options
	flag.Usage = usage
	flag.BoolVar(
		&showVersion, "version", false,
		"show version information",
	)
	flag.StringVar(
		&options.configFile, "config", "",
		"use this config file instead of the default location",
	)
	flag.StringVar(
		&options.logFile, "log", "",
		"append log messages to this file while the editor is running",
	)
	flag.BoolVar(
		&options.backup, "with-backup", false,
		"generate a backup, even if disabled in the config",
	)
	flag.BoolVar(
		&options.applyBackup, "apply-backup", false,
		"restore the destination file from its backup",
	)
	flag.StringVar(
		&options.exportImage, "export", "",
		"render the case to this image file and exit, the format is taken from the extension",
	)
	flag.BoolVar(
		&options.check, "check", false,
		"check that the case file is consistent and exit",
	)
	flag.BoolVar(
		&options.dumpPalettes, "dump-palettes", false,
		"Dump all configured palettes to standard output.",
	)
	flag.Parse()
	if showVersion {
		fmt.Printf("%s %s\n", appName, appVersion)
		os.Exit(0)
	}
	return options, flag.Args()
}

// configPath returns the path of the config file.
func configPath() (string, bool) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if len(configHome) == 0 {
		home := os.Getenv("HOME")
		if len(home) == 0 {
			return "", false
		}
		configHome = fmt.Sprintf("%s/.config", home)
	}
	locations := []string{
		fmt.Sprintf("%s/%s.toml", configHome, appName),
		fmt.Sprintf("%s/%s/config.toml", configHome, appName),
	}
	for _, location := range locations {
		stat, err := os.Stat(location)
		if err == nil && !stat.IsDir() {
			return location, true
		}
	}
	return "", false
}

// loadConfig loads, completes and checks the config. Errors are fatal.
func loadConfig(options *Options) Config {
	pathname := options.configFile
	if len(pathname) == 0 {
		pathname, _ = configPath()
	}
	cfg := DefaultConfig()
	if len(pathname) != 0 {
		var err error
		cfg, err = LoadConfig(pathname)
		if err != nil {
			Fatal("%s: %s", pathname, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		Fatal("environment: %s", err)
	}
	cfg.Normalize()
	MergeBuiltinPalettes(&cfg)
	cfg.General.Backup = cfg.General.Backup || options.backup
	if err := cfg.Check(); err != nil {
		Fatal("invalid config: %s", err)
	}
	return cfg
}

// newSession creates the canvas and the editor for the case file, loading it
// if it exists. A malformed file is fatal.
func newSession(cfg *Config, file *CaseFile) (*painter.Painter, *editor.Editor) {
	palette := cfg.Palette()
	p := painter.NewWithBackground(cfg.General.Width, cfg.General.Height, palette.Background)
	loaded, err := file.Load()
	if err != nil {
		Fatal("%s", err)
	}
	var e *editor.Editor
	if tc, ok := loaded.Get(); ok {
		e, err = editor.FromCase(p, palette, tc)
		if err != nil {
			Warn("%s: %s", file.Source(), err)
		}
	} else {
		e = editor.New(p, palette)
	}
	e.SetMarkerSize(geom.Coord(cfg.General.MarkerSize))
	return p, e
}

// check loads the source file and validates it, returning the exit status.
func check(file *CaseFile) int {
	loaded, err := file.Load()
	if err != nil {
		Warn("%s", err)
		return 1
	}
	tc, ok := loaded.Get()
	if !ok {
		Warn("%s: no such file", file.Source())
		return 1
	}
	if err := tc.Validate(); err != nil {
		Warn("%s: %s", file.Source(), err)
		return 1
	}
	fmt.Printf(
		"%s: OK, %d rectangles, %d found\n",
		file.Source(), len(tc.DataRects), len(tc.Found),
	)
	return 0
}

func exportImage(cfg *Config, file *CaseFile, pathname string) {
	format, err := painter.FormatFromPath(pathname)
	if err != nil {
		format = cfg.ExportFormat()
		Warn("%s: %s, using %s", pathname, err, format)
	}
	p, _ := newSession(cfg, file)
	if err := p.ExportFile(pathname, format); err != nil {
		Fatal("%s", err)
	}
}

func runEditor(cfg *Config, file CaseFile, logFile string) bool {
	p, e := newSession(cfg, &file)
	scr, err := tui.Init(cfg)
	if err != nil {
		Fatal("%s", err)
	}
	restoreLog, err := redirectLog(logFile)
	if err != nil {
		tui.Quit(scr)
		Fatal("%s", err)
	}
	tui.CatchInterrupts()
	app := NewApp(scr, cfg, file, e, p)
	saved := app.Run()
	tui.StopCatchingInterrupts()
	tui.Quit(scr)
	restoreLog()
	return saved
}

func main() {
	log.SetFlags(0)
	options, args := parseArgs()
	cfg := loadConfig(&options)
	if options.dumpPalettes {
		if err := DumpPalettes(&cfg, os.Stdout); err != nil {
			Fatal("%s", err)
		}
		return
	}
	if len(args) < 1 || len(args) > 2 {
		usage()
		os.Exit(1)
	}
	dest := ""
	if len(args) == 2 {
		dest = args[1]
	}
	file := NewCaseFile(args[0], dest, cfg.General.Backup)
	switch {
	case options.applyBackup:
		if err := RestoreBackup(file.Dest()); err != nil {
			Fatal("%s", err)
		}
	case options.check:
		os.Exit(check(&file))
	case len(options.exportImage) != 0:
		exportImage(&cfg, &file, options.exportImage)
	default:
		if !runEditor(&cfg, file, options.logFile) {
			fmt.Println("Unsaved changes were discarded")
		}
	}
}
