package window

import "fmt"

// ControlFlow tells Run whether to keep waiting for events. The zero value
// listens. Once Exit has been called Run delivers no further events and
// returns the exit code.
type ControlFlow struct {
	code    int
	exiting bool
}

// Listen keeps the loop running. It cancels a pending Exit issued earlier
// in the same callback.
func (f *ControlFlow) Listen() {
	f.code, f.exiting = 0, false
}

// Exit stops the loop after the current callback returns.
func (f *ControlFlow) Exit(code int) {
	f.code, f.exiting = code, true
}

// Exiting returns the exit code and true once Exit has been called.
func (f *ControlFlow) Exiting() (int, bool) {
	return f.code, f.exiting
}

func (f *ControlFlow) String() string {
	if f.exiting {
		return fmt.Sprintf("Exit(%d)", f.code)
	}
	return "Listen"
}
