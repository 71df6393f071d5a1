package dispatch

import "errors"

var (
	// ErrStreamClosed reports that the outbound event stream can no longer
	// be written. It aborts any in-flight work for the turn.
	ErrStreamClosed = errors.New("event stream closed")

	// ErrEmptyTurn reports a turn with no user message to dispatch.
	ErrEmptyTurn = errors.New("empty turn")
)
