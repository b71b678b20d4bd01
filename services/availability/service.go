package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	hoursRepo "salonbook/database/repository/hours"
	salonRepo "salonbook/database/repository/salon"
	"salonbook/models"
	"salonbook/utils"

	"go.uber.org/zap"
)

var (
	ErrInvalidDate   = utils.NewValidationError("InvalidDate", "date must be formatted as YYYY-MM-DD")
	ErrSalonNotFound = utils.NewNotFoundError("SalonNotFound", "salon not found")
)

// SalonLookup resolves a salon by ID.
type SalonLookup interface {
	GetByID(ctx context.Context, id string) (*models.Salon, error)
}

// HoursLookup returns one weekday's working hours.
type HoursLookup interface {
	GetForDay(ctx context.Context, salonID string, day models.DayOfWeek) (*models.WorkingHours, error)
}

// StaffCounter returns a salon's head count.
type StaffCounter interface {
	CountBySalon(ctx context.Context, salonID string) (int, error)
}

// AppointmentLister returns the non-cancelled appointments of a salon-day.
type AppointmentLister interface {
	ListActiveOnDate(ctx context.Context, salonID, date string) ([]models.Appointment, error)
}

// DayAvailability is the computed availability of one salon-day.
type DayAvailability struct {
	Date       time.Time // midnight, salon time zone
	Open       bool      // an hours record exists and the day is not closed
	StaffCount int
	Slots      []models.Slot
}

// SlotAt returns the slot starting at t, if it is offered.
func (d *DayAvailability) SlotAt(t models.ClockTime) (models.Slot, bool) {
	for _, s := range d.Slots {
		if s.Time == t {
			return s, true
		}
	}
	return models.Slot{}, false
}

// SlotService computes bookable slots. All methods are read-only.
type SlotService interface {
	AvailableSlots(ctx context.Context, salonID, date string, totalDuration int) ([]models.Slot, error)
	Availability(ctx context.Context, salonID, date string, totalDuration int) (*DayAvailability, error)
}

// DefaultSlotService implements SlotService over the salon repositories.
type DefaultSlotService struct {
	Salons       SalonLookup
	Hours        HoursLookup
	Staff        StaffCounter
	Appointments AppointmentLister
	Granularity  int
	Location     *time.Location
	Now          func() time.Time
	Logger       *zap.Logger
}

// NewSlotService wires a DefaultSlotService with the wall clock.
func NewSlotService(salons SalonLookup, hours HoursLookup, staff StaffCounter, appts AppointmentLister, granularity int, loc *time.Location) *DefaultSlotService {
	if granularity <= 0 {
		granularity = DefaultGranularity
	}
	if loc == nil {
		loc = time.UTC
	}
	return &DefaultSlotService{
		Salons:       salons,
		Hours:        hours,
		Staff:        staff,
		Appointments: appts,
		Granularity:  granularity,
		Location:     loc,
		Now:          time.Now,
		Logger:       utils.GetLogger(),
	}
}

// AvailableSlots lists the start times on date where an appointment of
// totalDuration minutes fits before closing, each with its remaining
// capacity. Fully booked slots are included with CapacityLeft 0.
func (s *DefaultSlotService) AvailableSlots(ctx context.Context, salonID, date string, totalDuration int) ([]models.Slot, error) {
	day, err := s.Availability(ctx, salonID, date, totalDuration)
	if err != nil {
		return nil, err
	}
	return day.Slots, nil
}

func (s *DefaultSlotService) Availability(ctx context.Context, salonID, date string, totalDuration int) (*DayAvailability, error) {
	started := time.Now()
	defer func() { utils.ObserveAvailabilityLatency(time.Since(started).Seconds()) }()

	day, err := time.ParseInLocation(models.DateLayout, date, s.Location)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if _, err := s.Salons.GetByID(ctx, salonID); err != nil {
		if errors.Is(err, salonRepo.ErrNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, fmt.Errorf("lookup salon: %w", err)
	}

	result := &DayAvailability{Date: day, Slots: []models.Slot{}}

	wh, err := s.Hours.GetForDay(ctx, salonID, models.DayOfWeekFor(day.Weekday()))
	if err != nil {
		if errors.Is(err, hoursRepo.ErrNotFound) {
			return result, nil
		}
		return nil, fmt.Errorf("lookup working hours: %w", err)
	}
	result.Open = !wh.IsClosed

	now := s.now().In(s.Location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.Location)
	if !result.Open || totalDuration <= 0 || day.Before(today) {
		return result, nil
	}

	candidates := GenerateGrid(*wh, s.Granularity)
	if len(candidates) == 0 {
		return result, nil
	}

	staffCount, err := s.Staff.CountBySalon(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("count staff: %w", err)
	}
	result.StaffCount = staffCount

	existing, err := s.Appointments.ListActiveOnDate(ctx, salonID, date)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	for _, t := range candidates {
		if int(t)+totalDuration > int(wh.CloseTime) {
			break
		}
		start := t.On(day, s.Location)
		if !start.After(now) {
			continue
		}
		result.Slots = append(result.Slots, models.Slot{
			Time:         t,
			CapacityLeft: CapacityFor(start, totalDuration, staffCount, existing),
		})
	}

	s.log().Debug("computed availability",
		zap.String("salonID", salonID),
		zap.String("date", date),
		zap.Int("duration", totalDuration),
		zap.Int("slots", len(result.Slots)),
	)
	return result, nil
}

func (s *DefaultSlotService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultSlotService) log() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
