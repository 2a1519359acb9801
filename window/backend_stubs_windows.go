//go:build windows

package window

func openX11(descriptor, NativeHandle) (backend, error) {
	return nil, ErrUnsupportedPlatform
}

func openWayland(descriptor, NativeHandle) (backend, error) {
	return nil, ErrUnsupportedPlatform
}
