package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/gwl/internal/config"
	"github.com/1broseidon/gwl/internal/platform"
	"github.com/1broseidon/gwl/internal/runtimepath"
	"github.com/1broseidon/gwl/internal/x11"
)

var (
	infoLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	infoValueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	infoHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	infoPrimaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// infoReport is what `gwl info` found out about the display.
type infoReport struct {
	goos     string
	detected platform.Kind
	selected platform.Kind
	socket   string
	monitors []x11.Monitor
	opensOn  string
}

func (r infoReport) render() string {
	// lipgloss wraps text wider than Width, so the column fits the longest
	// label.
	width := len("opens on")
	for _, m := range r.monitors {
		width = max(width, lipgloss.Width(m.Name))
	}
	label := infoLabelStyle.Width(width + 2)

	var b strings.Builder
	row := func(name, value string) {
		b.WriteString(label.Render(name))
		b.WriteString(infoValueStyle.Render(value))
		b.WriteString("\n")
	}

	row("os", r.goos)
	row("detected", r.detected.String())
	row("selected", r.selected.String())
	if r.socket != "" {
		row("socket", r.socket)
	}

	if len(r.monitors) > 0 {
		b.WriteString("\n")
		b.WriteString(infoHeaderStyle.Render("Monitors"))
		b.WriteString("\n")
		for _, m := range r.monitors {
			bounds := m.Bounds
			line := fmt.Sprintf("%dx%d+%d+%d", bounds.Width, bounds.Height, bounds.X, bounds.Y)
			if m.Primary {
				line += " " + infoPrimaryStyle.Render("(primary)")
			}
			row(m.Name, line)
		}
		if r.opensOn != "" {
			row("opens on", r.opensOn)
		}
	}
	return b.String()
}

func runInfo(args []string) int {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := pathFlag(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: gwl info [--path PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show which window system would be used and, on X11, the monitors.")
	}
	if rc := parseFlags(fs, args); rc >= 0 {
		return rc
	}

	res, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	report, err := gatherInfo(res.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Print(report.render())
	return 0
}

func gatherInfo(cfg *config.Config) (infoReport, error) {
	r := infoReport{
		goos:     runtime.GOOS,
		detected: platform.Detect(runtime.GOOS, os.Getenv),
		selected: cfg.BackendKind(),
	}
	if r.selected == platform.None {
		r.selected = r.detected
	}

	switch r.selected {
	case platform.Wayland:
		socket, err := runtimepath.WaylandSocket(cfg.Display)
		if err != nil {
			return r, err
		}
		r.socket = socket

	case platform.X11:
		conn, err := x11.NewConnection(cfg.Display)
		if err != nil {
			return r, err
		}
		defer conn.Close()

		if r.monitors, err = conn.Monitors(); err != nil {
			return r, err
		}
		if m, ok := x11.MonitorAt(r.monitors, int(cfg.Window.X), int(cfg.Window.Y)); ok {
			r.opensOn = m.Name
		}
	}
	return r, nil
}
