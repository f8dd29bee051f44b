package booking

import (
	"testing"

	"wellbook/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_Grid(t *testing.T) {
	cases := []struct {
		from    domain.BookingStatus
		to      domain.BookingStatus
		allowed bool
	}{
		{domain.BookingPending, domain.BookingAssignedToCompany, true},
		{domain.BookingPending, domain.BookingAssignedToMember, true},
		{domain.BookingPending, domain.BookingCancelled, true},
		{domain.BookingPending, domain.BookingConfirmed, false},
		{domain.BookingPending, domain.BookingCompleted, false},

		{domain.BookingAssignedToCompany, domain.BookingAssignedToMember, true},
		{domain.BookingAssignedToCompany, domain.BookingCancelled, true},
		{domain.BookingAssignedToCompany, domain.BookingConfirmed, false},

		{domain.BookingAssignedToMember, domain.BookingConfirmed, true},
		{domain.BookingAssignedToMember, domain.BookingCancelled, true},
		{domain.BookingAssignedToMember, domain.BookingInProgress, false},

		{domain.BookingConfirmed, domain.BookingInProgress, true},
		{domain.BookingConfirmed, domain.BookingCancelled, true},
		{domain.BookingConfirmed, domain.BookingCompleted, false},

		{domain.BookingInProgress, domain.BookingCompleted, true},
		{domain.BookingInProgress, domain.BookingCancelled, true},
		{domain.BookingInProgress, domain.BookingConfirmed, false},

		{domain.BookingCompleted, domain.BookingCancelled, false},
		{domain.BookingCompleted, domain.BookingPending, false},
		{domain.BookingCancelled, domain.BookingPending, false},
		{domain.BookingCancelled, domain.BookingConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, canTransition(tc.from, tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}

func TestMinutesSinceMidnight(t *testing.T) {
	m, ok := minutesSinceMidnight("10:30")
	assert.True(t, ok)
	assert.Equal(t, 630, m)

	m, ok = minutesSinceMidnight("00:00")
	assert.True(t, ok)
	assert.Equal(t, 0, m)

	m, ok = minutesSinceMidnight("23:59")
	assert.True(t, ok)
	assert.Equal(t, 1439, m)

	_, ok = minutesSinceMidnight("24:00")
	assert.False(t, ok)

	_, ok = minutesSinceMidnight("10:60")
	assert.False(t, ok)

	_, ok = minutesSinceMidnight("1030")
	assert.False(t, ok)

	_, ok = minutesSinceMidnight("aa:bb")
	assert.False(t, ok)
}

func TestOverlaps(t *testing.T) {
	// [10:00, 11:00) vs [10:30, 11:30) overlap
	assert.True(t, overlaps(600, 660, 630, 690))

	// [10:00, 11:00) vs [11:00, 12:00) touch but do not overlap
	assert.False(t, overlaps(600, 660, 660, 720))
	assert.False(t, overlaps(660, 720, 600, 660))

	// containment
	assert.True(t, overlaps(600, 720, 630, 660))
	assert.True(t, overlaps(630, 660, 600, 720))
}
