package booking

import (
	"time"

	"github.com/barberease/scheduler/internal/models"
	"github.com/barberease/scheduler/internal/timeutil"
)

// HasConflict reports whether the proposed half-open interval overlaps any
// of the supplied bookings. Callers must pass only active bookings
// (cancelled and no-show already filtered out); each booking's interval is
// derived from its snapshotted duration. Pure and side-effect free, safe to
// call concurrently.
func HasConflict(proposedStart, proposedEnd time.Time, existing []models.Booking) bool {
	for i := range existing {
		b := &existing[i]
		if timeutil.Overlaps(proposedStart, proposedEnd, b.AppointmentAt, b.EndsAt()) {
			return true
		}
	}
	return false
}
