package availability

import (
	"testing"
	"time"

	"salonbook/models"

	"github.com/stretchr/testify/assert"
)

var day = time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

func at(t models.ClockTime) time.Time {
	return t.On(day, time.UTC)
}

func booking(start models.ClockTime, minutes int, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{
		StartAt: at(start),
		EndAt:   at(start).Add(time.Duration(minutes) * time.Minute),
		Status:  status,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		a, b   [2]models.ClockTime
		expect bool
	}{
		{"partial overlap", [2]models.ClockTime{hm(9, 45), hm(10, 15)}, [2]models.ClockTime{hm(10, 0), hm(10, 30)}, true},
		{"contained", [2]models.ClockTime{hm(10, 0), hm(10, 15)}, [2]models.ClockTime{hm(9, 0), hm(11, 0)}, true},
		{"identical", [2]models.ClockTime{hm(10, 0), hm(10, 30)}, [2]models.ClockTime{hm(10, 0), hm(10, 30)}, true},
		{"touching after", [2]models.ClockTime{hm(10, 30), hm(11, 0)}, [2]models.ClockTime{hm(10, 0), hm(10, 30)}, false},
		{"touching before", [2]models.ClockTime{hm(9, 30), hm(10, 0)}, [2]models.ClockTime{hm(10, 0), hm(10, 30)}, false},
		{"disjoint", [2]models.ClockTime{hm(8, 0), hm(9, 0)}, [2]models.ClockTime{hm(10, 0), hm(10, 30)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Overlaps(at(tt.a[0]), at(tt.a[1]), at(tt.b[0]), at(tt.b[1])))
			assert.Equal(t, tt.expect, Overlaps(at(tt.b[0]), at(tt.b[1]), at(tt.a[0]), at(tt.a[1])))
		})
	}
}

func TestCapacityFor(t *testing.T) {
	existing := []models.Appointment{booking(hm(10, 0), 30, models.StatusBooked)}

	// 09:45-10:15 overlaps 10:00-10:30
	assert.Equal(t, 0, CapacityFor(at(hm(9, 45)), 30, 1, existing))
	// 10:30-11:00 does not
	assert.Equal(t, 1, CapacityFor(at(hm(10, 30)), 30, 1, existing))
	assert.Equal(t, 2, CapacityFor(at(hm(9, 45)), 30, 3, existing))
}

func TestCapacityForIgnoresCancelled(t *testing.T) {
	existing := []models.Appointment{
		booking(hm(10, 0), 30, models.StatusCancelled),
		booking(hm(10, 0), 60, models.StatusConfirmed),
		booking(hm(10, 0), 60, models.StatusComplete),
	}
	assert.Equal(t, 1, CapacityFor(at(hm(10, 0)), 30, 3, existing))
}

func TestCapacityForBounds(t *testing.T) {
	var existing []models.Appointment
	for i := 0; i < 5; i++ {
		existing = append(existing, booking(hm(9, 0), 120, models.StatusBooked))
	}

	for staff := 0; staff <= 7; staff++ {
		for _, start := range []models.ClockTime{hm(8, 0), hm(9, 0), hm(10, 30), hm(11, 0)} {
			got := CapacityFor(at(start), 60, staff, existing)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, staff)
		}
	}
}

func TestCapacityForNoStaff(t *testing.T) {
	assert.Equal(t, 0, CapacityFor(at(hm(9, 0)), 30, 0, nil))
}
