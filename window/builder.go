package window

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/1broseidon/gwl/internal/platform"
)

// Builder collects window settings. It is a value: every setter returns an
// updated copy, so a Builder can be reused as a template.
type Builder struct {
	d descriptor
}

// New returns a Builder for an untitled 100x100 window at the origin.
func New() Builder {
	return Builder{d: descriptor{width: 100, height: 100}}
}

func (b Builder) Title(title string) Builder {
	b.d.title = title
	return b
}

func (b Builder) Width(width uint32) Builder {
	b.d.width = width
	return b
}

func (b Builder) Height(height uint32) Builder {
	b.d.height = height
	return b
}

func (b Builder) X(x int32) Builder {
	b.d.x = x
	return b
}

func (b Builder) Y(y int32) Builder {
	b.d.y = y
	return b
}

func (b Builder) BorderWidth(width uint32) Builder {
	b.d.borderWidth = width
	return b
}

// Undecorated removes the title bar and frame right after creation.
func (b Builder) Undecorated(undecorated bool) Builder {
	b.d.undecorated = undecorated
	return b
}

// BuildAction installs construction hooks. A nil action restores the
// default.
func (b Builder) BuildAction(action BuildAction) Builder {
	b.d.action = action
	return b
}

// Backend forces a window system. platform.None detects one from the
// environment.
func (b Builder) Backend(kind platform.Kind) Builder {
	b.d.kind = kind
	return b
}

// Display overrides the display name used by X11 and Wayland.
func (b Builder) Display(display string) Builder {
	b.d.display = display
	return b
}

func (b Builder) Logger(logger *slog.Logger) Builder {
	b.d.logger = logger
	return b
}

// Build creates the native window. On failure nothing native is left
// behind.
//
// On Windows the calling goroutine is locked to its OS thread, and Run and
// every mutator must be called from it.
func (b Builder) Build() (*Window, error) {
	d := b.d
	if d.action == nil {
		d.action = DefaultBuildAction{}
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}

	kind := d.kind
	if kind == platform.None {
		kind = platform.Detect(runtime.GOOS, os.Getenv)
	}
	if kind == platform.None {
		return nil, ErrNoPlatform
	}
	d.kind = kind
	d.logger.Debug("selected window backend", "backend", kind)

	d.action.PreInit()
	override := d.action.OverrideWindowHandle()

	be, err := openBackend(kind, d, override)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	w := &Window{
		backend:   be,
		kind:      kind,
		ownership: Owned,
		logger:    d.logger,
	}
	if override != nil {
		w.ownership = Borrowed
		d.logger.Debug("adopted native window", "backend", kind)
	} else {
		d.action.WindowCreated(Instance{Handle: be.handle()})
		d.logger.Debug("created native window", "backend", kind, "title", d.title)
	}

	if d.undecorated {
		if err := be.setUndecorated(true); err != nil {
			w.Close()
			return nil, fmt.Errorf("%s: remove decorations: %w", kind, err)
		}
	}
	return w, nil
}

// MustBuild is like Build but panics on error.
func (b Builder) MustBuild() *Window {
	w, err := b.Build()
	if err != nil {
		panic(err)
	}
	return w
}
