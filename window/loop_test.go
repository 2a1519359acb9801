package window

import (
	"errors"
	"reflect"
	"testing"
)

// scriptSource replays fixed messages, each classified to the events listed
// for it, and records what was dispatched.
type scriptSource struct {
	msgs       [][]Event
	pos        int
	dispatched int
	end        error
}

func (s *scriptSource) next() ([]Event, error) {
	if s.pos >= len(s.msgs) {
		if s.end != nil {
			return nil, s.end
		}
		return nil, ErrClosed
	}
	msg := s.msgs[s.pos]
	s.pos++
	return msg, nil
}

func (s *scriptSource) dispatch([]Event)             { s.dispatched++ }
func (s *scriptSource) classify(msg []Event) []Event { return msg }

func TestDrive_DeliversInOrder(t *testing.T) {
	src := &scriptSource{msgs: [][]Event{
		{KeyDown{Code: 65}},
		{KeyUp{Code: 65}},
	}}

	var got []Event
	var flow ControlFlow
	_, err := drive[[]Event](src, &flow, func(ev Event, flow *ControlFlow) {
		got = append(got, ev)
	})
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("drive error = %v, want ErrClosed", err)
	}
	want := []Event{KeyDown{Code: 65}, KeyUp{Code: 65}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("delivered %v, want %v", got, want)
	}
}

func TestDrive_ExitStopsMidMessage(t *testing.T) {
	src := &scriptSource{msgs: [][]Event{
		{CloseRequested{}, KeyDown{Code: 1}},
		{Expose{}},
	}}

	var got []Event
	var flow ControlFlow
	code, err := drive[[]Event](src, &flow, func(ev Event, flow *ControlFlow) {
		got = append(got, ev)
		if _, ok := ev.(CloseRequested); ok {
			flow.Exit(7)
		}
	})
	if err != nil {
		t.Fatalf("drive error: %v", err)
	}
	if code != 7 {
		t.Fatalf("code = %d, want 7", code)
	}
	if len(got) != 1 {
		t.Fatalf("delivered %v after Exit, want only CloseRequested", got)
	}
	if src.pos != 1 {
		t.Fatalf("source read %d messages, want 1", src.pos)
	}
}

func TestDrive_ListenCancelsExit(t *testing.T) {
	src := &scriptSource{msgs: [][]Event{{Expose{}}, {Expose{}}}}

	calls := 0
	var flow ControlFlow
	_, err := drive[[]Event](src, &flow, func(ev Event, flow *ControlFlow) {
		calls++
		flow.Exit(3)
		flow.Listen()
	})
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("drive error = %v, want ErrClosed", err)
	}
	if calls != 2 {
		t.Fatalf("callback ran %d times, want 2", calls)
	}
}

func TestDrive_QuitReturnsCode(t *testing.T) {
	src := &scriptSource{end: &quitError{code: 4}}

	var flow ControlFlow
	code, err := drive[[]Event](src, &flow, func(Event, *ControlFlow) {
		t.Fatal("callback must not run")
	})
	if err != nil {
		t.Fatalf("drive error: %v", err)
	}
	if code != 4 {
		t.Fatalf("code = %d, want 4", code)
	}
}

func TestDrive_UnclassifiedDropped(t *testing.T) {
	src := &scriptSource{msgs: [][]Event{nil, nil, {Expose{}}}}

	calls := 0
	var flow ControlFlow
	drive[[]Event](src, &flow, func(Event, *ControlFlow) { calls++ })
	if calls != 1 {
		t.Fatalf("callback ran %d times, want 1", calls)
	}
	if src.dispatched != 3 {
		t.Fatalf("dispatched %d messages, want 3", src.dispatched)
	}
}

func TestControlFlow_String(t *testing.T) {
	var flow ControlFlow
	if got := flow.String(); got != "Listen" {
		t.Fatalf("String() = %q, want Listen", got)
	}
	flow.Exit(2)
	if got := flow.String(); got != "Exit(2)" {
		t.Fatalf("String() = %q, want Exit(2)", got)
	}
	if code, ok := flow.Exiting(); !ok || code != 2 {
		t.Fatalf("Exiting() = %d, %v", code, ok)
	}
}
