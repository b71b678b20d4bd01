package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// DateLayout is the wire format for calendar dates ("2025-02-25").
const DateLayout = "2006-01-02"

// ClockTime is a minute of the day (0 = 00:00, 1439 = 23:59).
// It travels over JSON as "HH:MM" and is stored in Mongo as an integer.
type ClockTime int

// ParseClockTime parses an "HH:MM" string.
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return ClockTime(hour*60 + minute), nil
}

// Valid reports whether t is a real minute of the day.
func (t ClockTime) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// On returns the absolute instant of t on the calendar day of date, in loc.
func (t ClockTime) On(date time.Time, loc *time.Location) time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return midnight.Add(time.Duration(t) * time.Minute)
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts "HH:MM" or a bare minute-of-day integer.
func (t *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseClockTime(s)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("time must be \"HH:MM\" or minutes since midnight")
	}
	if !ClockTime(n).Valid() {
		return fmt.Errorf("minute of day %d out of range", n)
	}
	*t = ClockTime(n)
	return nil
}

// DayOfWeek names a weekday the way the dashboard stores it ("monday").
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// Week lists the days Monday first, the order hours are displayed in.
var Week = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayOfWeekFor maps a time.Weekday onto DayOfWeek.
func DayOfWeekFor(wd time.Weekday) DayOfWeek {
	// time.Sunday == 0
	return Week[(int(wd)+6)%7]
}

// Valid reports whether d is one of the seven known day names.
func (d DayOfWeek) Valid() bool {
	return d.Index() >= 0
}

// Index returns the Monday-based position of d, or -1.
func (d DayOfWeek) Index() int {
	for i, day := range Week {
		if day == d {
			return i
		}
	}
	return -1
}
