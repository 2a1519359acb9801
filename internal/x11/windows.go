package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// EventMask is the set of events every managed window listens for.
const EventMask = xproto.EventMaskExposure |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskStructureNotify

// WindowSpec is the initial geometry of a new top-level window.
type WindowSpec struct {
	X           int32
	Y           int32
	Width       uint32
	Height      uint32
	BorderWidth uint32
}

// CreateWindow creates an unmapped top-level window on the default screen
// with the default visual and colormap, selects EventMask on it and opts in
// to WM_DELETE_WINDOW.
func (c *Connection) CreateWindow(spec WindowSpec) (xproto.Window, error) {
	win, err := xwindow.Generate(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate window id: %w", err)
	}

	screen := c.XUtil.Screen()
	// Value order follows the CW bit order.
	mask := uint32(xproto.CwBackPixel | xproto.CwBorderPixel | xproto.CwEventMask | xproto.CwColormap)
	values := []uint32{
		screen.WhitePixel,
		screen.BlackPixel,
		EventMask,
		uint32(screen.DefaultColormap),
	}

	err = xproto.CreateWindowChecked(
		c.XUtil.Conn(),
		screen.RootDepth,
		win.Id,
		c.Root,
		int16(spec.X), int16(spec.Y),
		uint16(spec.Width), uint16(spec.Height),
		uint16(spec.BorderWidth),
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		mask,
		values,
	).Check()
	if err != nil {
		return 0, fmt.Errorf("failed to create window: %w", err)
	}

	if err := icccm.WmProtocolsSet(c.XUtil, win.Id, []string{"WM_DELETE_WINDOW"}); err != nil {
		win.Destroy()
		return 0, fmt.Errorf("failed to set WM_PROTOCOLS: %w", err)
	}

	return win.Id, nil
}

// SelectEvents subscribes this connection to EventMask on a window it did not
// create. Event masks are per client, so the owner's selection is untouched.
func (c *Connection) SelectEvents(windowID xproto.Window) error {
	return xproto.ChangeWindowAttributesChecked(
		c.XUtil.Conn(),
		windowID,
		xproto.CwEventMask,
		[]uint32{EventMask},
	).Check()
}

// DeleteWindowAtom returns the WM_DELETE_WINDOW atom.
func (c *Connection) DeleteWindowAtom() (xproto.Atom, error) {
	return xprop.Atm(c.XUtil, "WM_DELETE_WINDOW")
}

// SetTitle sets both _NET_WM_NAME (UTF-8) and the legacy WM_NAME (Latin-1).
func (c *Connection) SetTitle(windowID xproto.Window, title string) error {
	if err := ewmh.WmNameSet(c.XUtil, windowID, title); err != nil {
		return fmt.Errorf("failed to set _NET_WM_NAME: %w", err)
	}
	if err := xprop.ChangeProp(c.XUtil, windowID, 8, "WM_NAME", "STRING", encodeLatin1(title)); err != nil {
		return fmt.Errorf("failed to set WM_NAME: %w", err)
	}
	return nil
}

// Title prefers _NET_WM_NAME and falls back to WM_NAME.
func (c *Connection) Title(windowID xproto.Window) (string, error) {
	if title, err := ewmh.WmNameGet(c.XUtil, windowID); err == nil {
		return title, nil
	}

	reply, err := xprop.GetProperty(c.XUtil, windowID, "WM_NAME")
	if err != nil {
		return "", fmt.Errorf("failed to read window title: %w", err)
	}
	return decodeLatin1(reply.Value), nil
}

// Map makes the window viewable.
func (c *Connection) Map(windowID xproto.Window) error {
	return xproto.MapWindowChecked(c.XUtil.Conn(), windowID).Check()
}

// Unmap hides the window without destroying it.
func (c *Connection) Unmap(windowID xproto.Window) error {
	return xproto.UnmapWindowChecked(c.XUtil.Conn(), windowID).Check()
}

// SetDecorated asks the window manager to draw, or drop, its frame through
// _MOTIF_WM_HINTS. The window itself is not recreated.
func (c *Connection) SetDecorated(windowID xproto.Window, decorated bool) error {
	hints := &motif.Hints{
		Flags:      motif.HintDecorations,
		Decoration: motif.DecorationNone,
	}
	if decorated {
		hints.Decoration = motif.DecorationAll
	}
	if err := motif.WmHintsSet(c.XUtil, windowID, hints); err != nil {
		return fmt.Errorf("failed to set _MOTIF_WM_HINTS: %w", err)
	}
	return nil
}

// Decorated reports what the window last asked the window manager for. A
// window without _MOTIF_WM_HINTS is decorated.
func (c *Connection) Decorated(windowID xproto.Window) bool {
	hints, err := motif.WmHintsGet(c.XUtil, windowID)
	if err != nil {
		return true
	}
	return motif.Decor(hints)
}

// Position returns the window origin in root coordinates.
func (c *Connection) Position(windowID xproto.Window) (int, int, error) {
	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to translate coordinates: %w", err)
	}
	return int(translate.DstX), int(translate.DstY), nil
}

// Size returns the current inside size of the window.
func (c *Connection) Size(windowID xproto.Window) (int, int, error) {
	geom, err := xwindow.RawGeometry(c.XUtil, xproto.Drawable(windowID))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get geometry: %w", err)
	}
	return geom.Width(), geom.Height(), nil
}

// Destroy destroys the window.
func (c *Connection) Destroy(windowID xproto.Window) error {
	return xproto.DestroyWindowChecked(c.XUtil.Conn(), windowID).Check()
}

// FindWindowByTitle searches the EWMH client list for a window whose
// _NET_WM_NAME contains the given substring. Returns the first match.
func (c *Connection) FindWindowByTitle(substring string) (xproto.Window, error) {
	if substring == "" {
		return 0, fmt.Errorf("empty title substring")
	}
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get client list: %w", err)
	}
	for _, win := range clients {
		name, err := c.Title(win)
		if err != nil {
			continue
		}
		if strings.Contains(name, substring) {
			return win, nil
		}
	}
	return 0, fmt.Errorf("no window found with title containing %q", substring)
}
