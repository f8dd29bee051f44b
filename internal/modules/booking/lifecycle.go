package booking

import (
	"strconv"
	"strings"

	"wellbook/internal/domain"
)

// validTransitions is the booking lifecycle. Completed and cancelled are
// terminal.
var validTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingPending: {
		domain.BookingAssignedToCompany,
		domain.BookingAssignedToMember,
		domain.BookingCancelled,
	},
	domain.BookingAssignedToCompany: {
		domain.BookingAssignedToMember,
		domain.BookingCancelled,
	},
	domain.BookingAssignedToMember: {
		domain.BookingConfirmed,
		domain.BookingCancelled,
	},
	domain.BookingConfirmed: {
		domain.BookingInProgress,
		domain.BookingCancelled,
	},
	domain.BookingInProgress: {
		domain.BookingCompleted,
		domain.BookingCancelled,
	},
	domain.BookingCompleted: {},
	domain.BookingCancelled: {},
}

func canTransition(from, to domain.BookingStatus) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func validStatus(s domain.BookingStatus) bool {
	_, ok := validTransitions[s]
	return ok
}

// minutesSinceMidnight parses an HH:MM clock value.
func minutesSinceMidnight(clock string) (int, bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// overlaps reports whether two half-open minute intervals intersect.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
