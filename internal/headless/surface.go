// Package headless implements an in-memory window system. A Surface stands in
// for a native window: it keeps the state a real window server would keep and
// delivers native messages from a FIFO queue that callers feed with Post.
package headless

import (
	"errors"
	"sync"
)

// MessageKind enumerates the native messages a Surface can deliver.
type MessageKind int

const (
	// Create is sent once when the surface is created (frame setup).
	Create MessageKind = iota
	Paint
	Destroy
	KeyPress
	KeyRelease
	// Motion has no window event counterpart and is dropped by classifiers.
	Motion
)

// Message is one native message.
type Message struct {
	Kind MessageKind
	Code uint32
}

// Style is the decoration style of a surface.
type Style int

const (
	StyleOverlapped Style = iota
	StylePopup
)

// ErrClosed is returned by Next once the surface has been closed and its
// queue drained.
var ErrClosed = errors.New("headless: surface closed")

// Surface is a simulated native window.
type Surface struct {
	mu sync.Mutex

	title       string
	x, y        int32
	width       uint32
	height      uint32
	borderWidth uint32
	style       Style
	mapped      bool
	closed      bool

	queue []Message
	ready chan struct{}
}

// NewSurface creates an unmapped surface at the given geometry. A Create
// message is queued first, the way a window server notifies a new window.
func NewSurface(x, y int32, width, height, borderWidth uint32) *Surface {
	s := &Surface{
		x:           x,
		y:           y,
		width:       width,
		height:      height,
		borderWidth: borderWidth,
		ready:       make(chan struct{}, 1),
	}
	s.Post(Message{Kind: Create})
	return s
}

// Post appends messages to the queue. Posting to a closed surface is a no-op.
func (s *Surface) Post(msgs ...Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.queue = append(s.queue, msgs...)
	select {
	case s.ready <- struct{}{}:
	default:
	}
}

// Next blocks until a message is queued and returns it.
func (s *Surface) Next() (Message, error) {
	for {
		s.mu.Lock()
		if len(s.queue) > 0 {
			msg := s.queue[0]
			s.queue = s.queue[1:]
			s.mu.Unlock()
			return msg, nil
		}
		if s.closed {
			s.mu.Unlock()
			return Message{}, ErrClosed
		}
		s.mu.Unlock()
		<-s.ready
	}
}

// Pending reports the number of queued messages.
func (s *Surface) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Close marks the surface closed and wakes any blocked reader. Messages
// already queued are still delivered.
func (s *Surface) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	select {
	case s.ready <- struct{}{}:
	default:
	}
}

// Closed reports whether Close was called.
func (s *Surface) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Surface) SetTitle(title string) {
	s.mu.Lock()
	s.title = title
	s.mu.Unlock()
}

func (s *Surface) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

func (s *Surface) SetBorderWidth(width uint32) {
	s.mu.Lock()
	s.borderWidth = width
	s.mu.Unlock()
}

func (s *Surface) BorderWidth() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.borderWidth
}

func (s *Surface) SetStyle(style Style) {
	s.mu.Lock()
	s.style = style
	s.mu.Unlock()
}

func (s *Surface) Style() Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.style
}

// SetMapped maps or unmaps the surface.
func (s *Surface) SetMapped(mapped bool) {
	s.mu.Lock()
	s.mapped = mapped
	s.mu.Unlock()
}

func (s *Surface) Mapped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapped
}

// MoveResize changes the geometry out of band, as a user dragging the window
// or a window manager would.
func (s *Surface) MoveResize(x, y int32, width, height uint32) {
	s.mu.Lock()
	s.x, s.y = x, y
	s.width, s.height = width, height
	s.mu.Unlock()
}

func (s *Surface) Position() (int32, int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.x, s.y
}

func (s *Surface) Size() (uint32, uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}
