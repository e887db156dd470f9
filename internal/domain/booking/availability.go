package booking

import (
	"time"

	"github.com/barberease/scheduler/internal/models"
)

type AvailabilityInput struct {
	ShopID    string
	StaffID   string
	ServiceID string
	Date      time.Time
}

// SlotConfig holds the fixed daily operating window and slot granularity.
// Both are configuration inputs, not computed.
type SlotConfig struct {
	OpenHour    int
	OpenMinute  int
	CloseHour   int
	CloseMinute int
	Granularity time.Duration
}

func DefaultSlotConfig() SlotConfig {
	return SlotConfig{
		OpenHour:    9,
		CloseHour:   18,
		Granularity: 30 * time.Minute,
	}
}

// GenerateSlots produces the ascending sequence of bookable start times for
// date, stepping through the operating window at the configured granularity.
// A candidate is kept when its occupied span (service duration plus buffer)
// fits before close, does not conflict with any existing active booking, and
// starts strictly after now. An empty result is a fully booked day, not an
// error; a date before now's day always yields an empty result.
func GenerateSlots(
	cfg SlotConfig,
	serviceDuration time.Duration,
	bufferTime time.Duration,
	date time.Time,
	existing []models.Booking,
	now time.Time,
) []time.Time {

	loc := date.Location()
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return []time.Time{}
	}

	open := day.Add(time.Duration(cfg.OpenHour)*time.Hour + time.Duration(cfg.OpenMinute)*time.Minute)
	closing := day.Add(time.Duration(cfg.CloseHour)*time.Hour + time.Duration(cfg.CloseMinute)*time.Minute)

	occupied := serviceDuration + bufferTime

	slots := []time.Time{}
	for cur := open; !cur.Add(occupied).After(closing); cur = cur.Add(cfg.Granularity) {
		if !cur.After(now) {
			continue
		}
		if HasConflict(cur, cur.Add(occupied), existing) {
			continue
		}
		slots = append(slots, cur)
	}

	return slots
}
