package availability

import (
	"time"

	"salonbook/models"
)

// Overlaps is the half-open interval test [aStart, aEnd) ∩ [bStart, bEnd) ≠ ∅.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// CapacityFor returns how many more appointments can start at start and run
// for duration minutes, given staffCount and the appointments already booked.
// Cancelled appointments never count. The result is in [0, staffCount].
func CapacityFor(start time.Time, duration, staffCount int, existing []models.Appointment) int {
	if staffCount <= 0 {
		return 0
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	overlapping := 0
	for _, appt := range existing {
		if !appt.Active() {
			continue
		}
		if Overlaps(start, end, appt.StartAt, appt.EndAt) {
			overlapping++
		}
	}

	if left := staffCount - overlapping; left > 0 {
		return left
	}
	return 0
}
