package window

// BuildAction lets a caller hook into window construction.
//
// PreInit runs before any native resource exists. OverrideWindowHandle may
// return a handle created elsewhere; the window then adopts it instead of
// creating one, and WindowCreated is not called. Otherwise WindowCreated
// runs once, after the native window exists and its title is set, and
// before Build returns.
type BuildAction interface {
	PreInit()
	OverrideWindowHandle() NativeHandle
	WindowCreated(Instance)
}

// DefaultBuildAction does nothing. Embed it to implement only the hooks you
// need.
type DefaultBuildAction struct{}

func (DefaultBuildAction) PreInit()                           {}
func (DefaultBuildAction) OverrideWindowHandle() NativeHandle { return nil }
func (DefaultBuildAction) WindowCreated(Instance)             {}

// Instance is a borrowed view of a live window. It is only valid during the
// call it was passed to.
type Instance struct {
	Handle NativeHandle
}
