package model

import (
	"shareit/shared/failure"
)

// State selects which slice of a user's bookings a listing returns. It is a
// closed set; anything else coming over the wire is rejected at parse time.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState matches the raw token case-sensitively; "all" is as unknown as "BOGUS".
func ParseState(raw string) (State, error) {
	switch State(raw) {
	case StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StatePast:
		return StatePast, nil
	case StateFuture:
		return StateFuture, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	default:
		return "", failure.UnsupportedState(raw) // nolint:wrapcheck
	}
}
