package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to ReviewStatus }{
		{StatusPending, StatusInProgress},
		{StatusPending, StatusEligible},
		{StatusPending, StatusIneligible},
		{StatusInProgress, StatusEligible},
		{StatusInProgress, StatusIneligible},
		{StatusIneligible, StatusPending},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to ReviewStatus }{
		{StatusEligible, StatusPending},
		{StatusEligible, StatusIneligible},
		{StatusEligible, StatusInProgress},
		{StatusIneligible, StatusEligible},
		{StatusInProgress, StatusPending},
		{StatusPending, StatusPending},
	}
	for _, tc := range denied {
		assert.False(t, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStatusIsOpen(t *testing.T) {
	assert.True(t, StatusPending.IsOpen())
	assert.True(t, StatusInProgress.IsOpen())
	assert.False(t, StatusEligible.IsOpen())
	assert.False(t, StatusIneligible.IsOpen())
	assert.False(t, ReviewStatus("approved").Valid())
}
