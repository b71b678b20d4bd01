package salon

import (
	"context"

	"salonbook/models"
	"salonbook/utils"

	"go.uber.org/zap"
)

// Default opening hours for a new salon.
const (
	DefaultOpenTime  = models.ClockTime(9 * 60)
	DefaultCloseTime = models.ClockTime(20 * 60)
)

// DefaultWeek returns seven open days with the default hours.
func DefaultWeek() []models.WorkingHours {
	week := make([]models.WorkingHours, 0, len(models.Week))
	for _, day := range models.Week {
		week = append(week, models.WorkingHours{
			DayOfWeek: day,
			OpenTime:  DefaultOpenTime,
			CloseTime: DefaultCloseTime,
		})
	}
	return week
}

// GetHours returns the salon's week, Monday first. Days without a record
// are simply absent.
func (s *DefaultSalonService) GetHours(ctx context.Context, salonID string) ([]models.WorkingHours, error) {
	if _, err := s.GetSalon(ctx, salonID); err != nil {
		return nil, err
	}
	hours, err := s.Hours.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, utils.NewInternalError("failed to load working hours", err)
	}
	if hours == nil {
		hours = []models.WorkingHours{}
	}
	return hours, nil
}

// SetHours replaces the salon's whole week. A close time at or before the
// open time is stored as given; such a day just has no slots.
func (s *DefaultSalonService) SetHours(ctx context.Context, salonID string, hours []models.WorkingHours) ([]models.WorkingHours, error) {
	if err := ValidateWeek(hours); err != nil {
		return nil, err
	}
	if err := s.Hours.ReplaceWeek(ctx, salonID, hours); err != nil {
		return nil, utils.NewInternalError("failed to save working hours", err)
	}
	s.log().Info("working hours updated", zap.String("salonID", salonID), zap.Int("days", len(hours)))
	return s.GetHours(ctx, salonID)
}

// ValidateWeek checks that every day appears at most once with in-range times.
func ValidateWeek(hours []models.WorkingHours) error {
	if len(hours) == 0 || len(hours) > len(models.Week) {
		return ErrInvalidHours.WithMessage("provide between 1 and 7 days")
	}
	seen := make(map[models.DayOfWeek]bool, len(hours))
	for _, wh := range hours {
		if !wh.DayOfWeek.Valid() {
			return ErrInvalidHours.WithMessage("unknown day %q", wh.DayOfWeek)
		}
		if seen[wh.DayOfWeek] {
			return ErrInvalidHours.WithMessage("%s is listed more than once", wh.DayOfWeek)
		}
		seen[wh.DayOfWeek] = true
		if !wh.OpenTime.Valid() || !wh.CloseTime.Valid() {
			return ErrInvalidHours.WithMessage("%s times must be between 00:00 and 23:59", wh.DayOfWeek)
		}
	}
	return nil
}
