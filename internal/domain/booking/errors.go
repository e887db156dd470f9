package booking

import "errors"

var (
	// ErrNotFound means the referenced booking, service or staff does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSlotUnavailable means the proposed interval conflicts with an
	// existing active booking, detected either at check time or at commit.
	ErrSlotUnavailable = errors.New("slot unavailable")

	// ErrAlreadyTerminal means a transition was attempted on a booking whose
	// status is cancelled, completed or no-show.
	ErrAlreadyTerminal = errors.New("booking already in terminal status")

	// ErrTimeout means the store round-trip exceeded its bound. Retryable by
	// the caller; never conflated with ErrSlotUnavailable.
	ErrTimeout = errors.New("store timeout")

	// ErrInvalidRequest means the request itself is malformed, e.g. a
	// non-positive service duration or an unknown status value.
	ErrInvalidRequest = errors.New("invalid request")
)
