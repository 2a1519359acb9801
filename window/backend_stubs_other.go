//go:build !windows

package window

func openWin32(descriptor, NativeHandle) (backend, error) {
	return nil, ErrUnsupportedPlatform
}
