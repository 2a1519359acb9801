package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/gwl/internal/config"
	"github.com/1broseidon/gwl/internal/eventlog"
	"github.com/1broseidon/gwl/internal/platform"
	"github.com/1broseidon/gwl/internal/x11"
	"github.com/1broseidon/gwl/window"
)

// windowFlags are the config overrides shared by run and adopt.
type windowFlags struct {
	path        *string
	backend     *string
	display     *string
	title       *string
	width       *uint
	height      *uint
	x           *int
	y           *int
	border      *uint
	undecorated *bool
	exitKey     *string
	exitCode    *int
	record      *string
}

func registerWindowFlags(fs *flag.FlagSet) *windowFlags {
	return &windowFlags{
		path:        fs.String("path", "", "Config file path (default: ~/.config/gwl/config.yaml)"),
		backend:     fs.String("backend", "", "Window system: auto, x11, wayland, windows, headless"),
		display:     fs.String("display", "", "X11 or Wayland display name"),
		title:       fs.String("title", "", "Window title"),
		width:       fs.Uint("width", 0, "Window width"),
		height:      fs.Uint("height", 0, "Window height"),
		x:           fs.Int("x", 0, "Window x position"),
		y:           fs.Int("y", 0, "Window y position"),
		border:      fs.Uint("border", 0, "Border width"),
		undecorated: fs.Bool("undecorated", false, "Remove title bar and frame"),
		exitKey:     fs.String("exit-key", "", "Key that exits the loop on release"),
		exitCode:    fs.Int("exit-code", 0, "Exit status used by the exit key"),
		record:      fs.String("record", "", "Append delivered events to this file"),
	}
}

// apply copies every flag that was set on the command line over cfg.
func (f *windowFlags) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "backend":
			cfg.Backend = *f.backend
		case "display":
			cfg.Display = *f.display
		case "title":
			cfg.Window.Title = *f.title
		case "width":
			cfg.Window.Width = uint32(*f.width)
		case "height":
			cfg.Window.Height = uint32(*f.height)
		case "x":
			cfg.Window.X = int32(*f.x)
		case "y":
			cfg.Window.Y = int32(*f.y)
		case "border":
			cfg.Window.BorderWidth = uint32(*f.border)
		case "undecorated":
			cfg.Window.Undecorated = *f.undecorated
		case "exit-key":
			cfg.Exit.Key = *f.exitKey
		case "exit-code":
			cfg.Exit.Code = *f.exitCode
		case "record":
			cfg.Record.Path = *f.record
		}
	})
}

func (f *windowFlags) load(fs *flag.FlagSet) (*config.Config, error) {
	res, err := loadConfig(*f.path)
	if err != nil {
		return nil, err
	}
	cfg := res.Config
	f.apply(fs, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func builderFromConfig(cfg *config.Config, logger *slog.Logger) window.Builder {
	return window.New().
		Title(cfg.Window.Title).
		Width(cfg.Window.Width).
		Height(cfg.Window.Height).
		X(cfg.Window.X).
		Y(cfg.Window.Y).
		BorderWidth(cfg.Window.BorderWidth).
		Undecorated(cfg.Window.Undecorated).
		Backend(cfg.BackendKind()).
		Display(cfg.Display).
		Logger(logger)
}

func runWindow(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	flags := registerWindowFlags(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: gwl run [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open a window and print its events until the exit key is released")
		fmt.Fprintln(os.Stderr, "or the window is closed. Flags override the config file.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if rc := parseFlags(fs, args); rc >= 0 {
		return rc
	}

	cfg, err := flags.load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger := newLogger(cfg.Logging, os.Stderr)

	w, err := builderFromConfig(cfg, logger).Build()
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer w.Close()

	return loop(w, cfg, logger)
}

// titleAdopter hands an existing X11 window to the builder.
type titleAdopter struct {
	window.DefaultBuildAction
	conn *x11.Connection
	win  xproto.Window
}

func (a *titleAdopter) OverrideWindowHandle() window.NativeHandle {
	return window.X11Handle{XUtil: a.conn.XUtil, Window: a.win}
}

func runAdopt(args []string) int {
	fs := flag.NewFlagSet("adopt", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	flags := registerWindowFlags(fs)
	match := fs.String("match", "", "Substring of the window title to adopt")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: gwl adopt --match SUBSTRING [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Attach to the first X11 client whose title contains SUBSTRING and")
		fmt.Fprintln(os.Stderr, "print its events. The window is left open on exit.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if rc := parseFlags(fs, args); rc >= 0 {
		return rc
	}
	if strings.TrimSpace(*match) == "" {
		fmt.Fprintln(os.Stderr, "adopt requires --match")
		return 2
	}

	cfg, err := flags.load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger := newLogger(cfg.Logging, os.Stderr)

	conn, err := x11.NewConnection(cfg.Display)
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer conn.Close()

	target, err := conn.FindWindowByTitle(*match)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger.Info("adopting window", "window", fmt.Sprintf("0x%x", uint32(target)), "match", *match)

	w, err := builderFromConfig(cfg, logger).
		Backend(platform.X11).
		BuildAction(&titleAdopter{conn: conn, win: target}).
		Build()
	if err != nil {
		log.Fatalf("Failed to adopt window: %v", err)
	}
	defer w.Close()

	return loop(w, cfg, logger)
}

func loop(w *window.Window, cfg *config.Config, logger *slog.Logger) int {
	rec, err := eventlog.Open(eventlog.Config{
		Path:      cfg.Record.Path,
		MaxSizeMB: cfg.Record.MaxSizeMB,
		MaxFiles:  cfg.Record.MaxFiles,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer rec.Close()

	code, err := w.Run(eventHandler(w, cfg.Exit, rec, logger))
	if err != nil {
		logger.Error("event loop failed", "error", err)
		return 1
	}
	return code
}

// eventHandler logs and records every event. It exits with cfg.Code when
// the exit key is released and with 0 when the window is closed.
func eventHandler(w *window.Window, cfg config.ExitConfig, rec *eventlog.Recorder, logger *slog.Logger) window.Callback {
	backend := w.Backend().String()
	return func(ev window.Event, flow *window.ControlFlow) {
		details := map[string]any{"backend": backend}

		switch e := ev.(type) {
		case window.KeyDown:
			details["code"] = e.Code
			details["key"] = w.KeyName(e.Code)
		case window.KeyUp:
			name := w.KeyName(e.Code)
			details["code"] = e.Code
			details["key"] = name
			if cfg.Key != "" && strings.EqualFold(name, cfg.Key) {
				flow.Exit(cfg.Code)
			}
		case window.CloseRequested:
			flow.Exit(0)
		}

		logger.Info("event", "event", fmt.Sprint(ev), "flow", flow.String())
		rec.Record(fmt.Sprint(ev), details)
	}
}
