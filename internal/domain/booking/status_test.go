package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusCancelled))
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusNoShow))

	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusConfirmed))
	assert.False(t, IsTerminal(StatusInProgress))
}

func TestIsActive(t *testing.T) {
	// Completed keeps its interval; cancelled and no-show free the slot.
	assert.True(t, IsActive(StatusCompleted))
	assert.True(t, IsActive(StatusPending))
	assert.False(t, IsActive(StatusCancelled))
	assert.False(t, IsActive(StatusNoShow))
}

func TestCanTransition(t *testing.T) {
	assert.NoError(t, CanTransition(StatusPending))
	assert.NoError(t, CanTransition(StatusConfirmed))
	assert.NoError(t, CanTransition(StatusInProgress))

	assert.ErrorIs(t, CanTransition(StatusCancelled), ErrAlreadyTerminal)
	assert.ErrorIs(t, CanTransition(StatusCompleted), ErrAlreadyTerminal)
	assert.ErrorIs(t, CanTransition(StatusNoShow), ErrAlreadyTerminal)
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusConfirmed))
	assert.False(t, ValidStatus(Status("rescheduled")))
	assert.False(t, ValidStatus(Status("")))
}
