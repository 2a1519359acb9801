package platform

import (
	"fmt"
	"strings"
)

// Kind identifies the native window system a window is built on.
type Kind int

const (
	// None means no usable window system was detected.
	None Kind = iota
	Windows
	X11
	Wayland
	// Headless is an in-memory window system. It is never detected, only
	// selected explicitly.
	Headless
)

func (k Kind) String() string {
	switch k {
	case Windows:
		return "windows"
	case X11:
		return "x11"
	case Wayland:
		return "wayland"
	case Headless:
		return "headless"
	default:
		return "none"
	}
}

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Detect resolves the window system from the target OS and the environment.
//
// Windows always wins on goos "windows". Elsewhere WAYLAND_DISPLAY selects
// Wayland, then DISPLAY selects X11, otherwise None.
func Detect(goos string, getenv func(string) string) Kind {
	if goos == "windows" {
		return Windows
	}
	if getenv == nil {
		return None
	}
	if strings.TrimSpace(getenv("WAYLAND_DISPLAY")) != "" {
		return Wayland
	}
	if strings.TrimSpace(getenv("DISPLAY")) != "" {
		return X11
	}
	return None
}

// Parse maps a configuration value to a Kind. The empty string and "auto"
// return None, meaning "detect at build time".
func Parse(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return None, nil
	case "x11", "xlib":
		return X11, nil
	case "wayland":
		return Wayland, nil
	case "windows", "win32":
		return Windows, nil
	case "headless":
		return Headless, nil
	default:
		return None, fmt.Errorf("unknown backend %q (want auto, x11, wayland, windows or headless)", s)
	}
}
