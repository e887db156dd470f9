package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"

	booking "github.com/barberease/scheduler/internal/domain/booking"
)

// FromDomain writes the HTTP response for a booking-engine error. Unknown
// errors become a generic 500 so internals never leak.
func FromDomain(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		NotFound(c, "not_found", "Resource not found.")
	case errors.Is(err, booking.ErrSlotUnavailable):
		Conflict(c, "slot_unavailable", "Time slot is already booked.")
	case errors.Is(err, booking.ErrAlreadyTerminal):
		Conflict(c, "already_terminal", "Booking is already completed, cancelled or marked no-show.")
	case errors.Is(err, booking.ErrTimeout):
		Unavailable(c, "store_timeout", "Temporary storage slowdown, please retry.")
	case errors.Is(err, booking.ErrInvalidRequest):
		BadRequest(c, "invalid_request", "Invalid request.")
	default:
		Internal(c, "internal_error", "Unexpected error.")
	}
}
