package window

import (
	"errors"
	"fmt"
)

// Callback receives every event delivered by Run, in arrival order.
type Callback func(ev Event, flow *ControlFlow)

// source is a native message queue. next is the only call allowed to block.
// dispatch hands the message to the platform's own processing and classify
// turns it into zero or more events, structural ones before key ones.
type source[M any] interface {
	next() (M, error)
	dispatch(M)
	classify(M) []Event
}

// quitError is returned by a source when the platform asks the whole
// application to quit with a code.
type quitError struct {
	code int
}

func (e *quitError) Error() string {
	return fmt.Sprintf("quit requested with code %d", e.code)
}

func drive[M any](src source[M], flow *ControlFlow, cb Callback) (int, error) {
	for {
		if code, ok := flow.Exiting(); ok {
			return code, nil
		}

		msg, err := src.next()
		if err != nil {
			var quit *quitError
			if errors.As(err, &quit) {
				return quit.code, nil
			}
			return 0, err
		}

		src.dispatch(msg)
		for _, ev := range src.classify(msg) {
			cb(ev, flow)
			if code, ok := flow.Exiting(); ok {
				return code, nil
			}
		}
	}
}
