package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// ===============================
// Validations
// ===============================

// IsTerminal reports whether no further lifecycle transition is permitted.
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted || s == StatusNoShow
}

// IsActive reports whether a booking still blocks its staff member's
// schedule. Cancelled and no-show bookings free the slot; a completed one
// is in the past and keeps its interval.
func IsActive(s Status) bool {
	return s != StatusCancelled && s != StatusNoShow
}

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// CanTransition is the only gate on direct status overwrites: a terminal
// booking stays terminal. Anything else is allowed on purpose, matching
// the permissive staff-facing status endpoint.
func CanTransition(current Status) error {
	if IsTerminal(current) {
		return ErrAlreadyTerminal
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
