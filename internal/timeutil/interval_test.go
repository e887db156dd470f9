package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 6, 1, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		startA, endA, startB, endB time.Time
		want                       bool
	}{
		{"touching boundary", at(10, 0), at(10, 30), at(10, 30), at(11, 0), false},
		{"containment", at(10, 0), at(11, 0), at(10, 30), at(10, 45), true},
		{"partial overlap", at(10, 0), at(10, 30), at(10, 15), at(10, 45), true},
		{"disjoint", at(9, 0), at(9, 30), at(14, 0), at(14, 30), false},
		{"identical", at(10, 0), at(10, 30), at(10, 0), at(10, 30), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.startA, tc.endA, tc.startB, tc.endB))
			// symmetry
			assert.Equal(t, tc.want, Overlaps(tc.startB, tc.endB, tc.startA, tc.endA))
		})
	}
}

func TestOverlapsAcrossMidnight(t *testing.T) {
	// A long appointment running past midnight still conflicts with an
	// early-morning one the next day.
	startA := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)
	endA := time.Date(2024, 6, 2, 0, 30, 0, 0, time.UTC)
	startB := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	endB := time.Date(2024, 6, 2, 0, 30, 0, 0, time.UTC)

	assert.True(t, Overlaps(startA, endA, startB, endB))
}
