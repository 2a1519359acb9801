package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"

	"github.com/1broseidon/gwl/internal/platform"
)

// Monitor is one active RandR output.
type Monitor struct {
	ID      int
	Name    string
	Primary bool
	Bounds  platform.Rect
}

// Monitors lists the CRTCs that are driving an output.
func (c *Connection) Monitors() ([]Monitor, error) {
	xc := c.XUtil.Conn()
	if err := randr.Init(xc); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	res, err := randr.GetScreenResources(xc, c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var primary randr.Output
	if reply, err := randr.GetOutputPrimary(xc, c.Root).Reply(); err == nil {
		primary = reply.Output
	}

	monitors := make([]Monitor, 0, len(res.Crtcs))
	for id, crtc := range res.Crtcs {
		info, err := randr.GetCrtcInfo(xc, crtc, res.ConfigTimestamp).Reply()
		if err != nil || info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		out := info.Outputs[0]
		m := Monitor{
			ID:      id,
			Name:    fmt.Sprintf("crtc-%d", id),
			Primary: primary != 0 && out == primary,
			Bounds:  platform.Rect{X: int(info.X), Y: int(info.Y), Width: int(info.Width), Height: int(info.Height)},
		}
		if oi, err := randr.GetOutputInfo(xc, out, res.ConfigTimestamp).Reply(); err == nil {
			m.Name = string(oi.Name)
		}
		monitors = append(monitors, m)
	}
	return monitors, nil
}

// MonitorAt returns the monitor containing the point, or false when none
// does.
func MonitorAt(monitors []Monitor, x, y int) (Monitor, bool) {
	for _, m := range monitors {
		if m.Bounds.Contains(x, y) {
			return m, true
		}
	}
	return Monitor{}, false
}
