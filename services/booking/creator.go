package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	appointmentRepo "salonbook/database/repository/appointment"
	salonRepo "salonbook/database/repository/salon"
	"salonbook/models"
	"salonbook/services/availability"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMaxAttempts bounds how often a commit that lost a write conflict is
// retried before the customer is told the slot is gone.
const DefaultMaxAttempts = 3

// ServiceLookup returns the services among ids that belong to salonID.
type ServiceLookup interface {
	GetByIDs(ctx context.Context, salonID string, ids []string) ([]models.Service, error)
}

// AppointmentInserter commits an appointment if capacity remains.
type AppointmentInserter interface {
	InsertWithinCapacity(ctx context.Context, appt *models.Appointment, staffCount int) error
}

// AppointmentCreator books appointments for customers.
type AppointmentCreator interface {
	Create(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error)
}

// DefaultAppointmentCreator validates a booking against live availability
// and commits it. Commits for one salon-day are serialised by Locker and
// re-checked inside the insert transaction.
type DefaultAppointmentCreator struct {
	Salons       availability.SalonLookup
	Slots        availability.SlotService
	Services     ServiceLookup
	Appointments AppointmentInserter
	Locker       Locker
	Scheduler    CompletionScheduler
	MaxAttempts  int
	LockWait     time.Duration
	Location     *time.Location
	Now          func() time.Time
	Logger       *zap.Logger
}

func (c *DefaultAppointmentCreator) Create(ctx context.Context, req models.CreateAppointmentRequest) (appt *models.Appointment, err error) {
	logger := c.log().With(zap.String("salonID", req.SalonID), zap.String("date", req.Date), zap.String("time", req.Time))
	defer func() {
		var appErr *utils.AppError
		if errors.As(err, &appErr) && appErr.Kind != utils.KindInternal {
			utils.IncBookingRejected(appErr.Code)
			logger.Info("booking rejected", zap.String("code", appErr.Code))
		}
	}()

	name := strings.TrimSpace(req.CustomerName)
	phone := strings.TrimSpace(req.CustomerPhone)
	if name == "" || !utils.ValidPhone(phone) {
		return nil, ErrInvalidCustomerInfo
	}

	serviceIDs := dedupe(req.Services)
	if len(serviceIDs) == 0 {
		return nil, ErrNoServicesSelected
	}

	loc := c.location()
	day, err := time.ParseInLocation(models.DateLayout, req.Date, loc)
	if err != nil {
		return nil, availability.ErrInvalidDate
	}
	clock, err := models.ParseClockTime(req.Time)
	if err != nil {
		return nil, ErrInvalidTime
	}
	startAt := clock.On(day, loc)
	if !startAt.After(c.now()) {
		return nil, ErrSlotInPast
	}

	if _, err := c.Salons.GetByID(ctx, req.SalonID); err != nil {
		if errors.Is(err, salonRepo.ErrNotFound) {
			return nil, availability.ErrSalonNotFound
		}
		return nil, utils.NewInternalError("failed to load salon", err)
	}

	services, err := c.Services.GetByIDs(ctx, req.SalonID, serviceIDs)
	if err != nil {
		return nil, utils.NewInternalError("failed to load services", err)
	}
	if len(services) != len(serviceIDs) {
		return nil, ErrNoSuchService
	}
	totalDuration, totalPrice := totals(services)

	if c.Locker != nil {
		lockCtx, cancel := context.WithTimeout(ctx, c.lockWait())
		unlock, lockErr := c.Locker.Lock(lockCtx, LockKey(req.SalonID, req.Date))
		cancel()
		if lockErr != nil {
			if errors.Is(lockErr, ErrLockTimeout) {
				return nil, ErrSlotNoLongerAvailable
			}
			return nil, utils.NewInternalError("failed to acquire booking lock", lockErr)
		}
		defer unlock()
	}

	for attempt := 1; attempt <= c.maxAttempts(); attempt++ {
		avail, err := c.Slots.Availability(ctx, req.SalonID, req.Date, totalDuration)
		if err != nil {
			return nil, mapLookupError(err)
		}
		if !avail.Open {
			return nil, ErrSalonClosed
		}
		slot, ok := avail.SlotAt(clock)
		if !ok {
			return nil, ErrSlotNotOffered
		}
		if slot.CapacityLeft <= 0 {
			return nil, ErrSlotNoLongerAvailable
		}

		now := c.now()
		candidate := &models.Appointment{
			ID:            uuid.New().String(),
			SalonID:       req.SalonID,
			CustomerName:  name,
			CustomerPhone: phone,
			ServiceIDs:    serviceIDs,
			StaffID:       nil,
			Date:          req.Date,
			Time:          clock,
			StartAt:       startAt,
			EndAt:         startAt.Add(time.Duration(totalDuration) * time.Minute),
			TotalDuration: totalDuration,
			TotalPrice:    totalPrice,
			Status:        models.StatusBooked,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		err = c.Appointments.InsertWithinCapacity(ctx, candidate, avail.StaffCount)
		switch {
		case err == nil:
			utils.IncAppointmentCreated()
			logger.Info("appointment booked",
				zap.String("appointmentID", candidate.ID),
				zap.Int("duration", totalDuration),
				zap.Int("attempt", attempt),
			)
			c.scheduleCompletion(ctx, candidate, logger)
			return candidate, nil
		case errors.Is(err, appointmentRepo.ErrCapacityExceeded):
			return nil, ErrSlotNoLongerAvailable
		case errors.Is(err, appointmentRepo.ErrWriteConflict):
			utils.IncBookingRetry()
			logger.Debug("booking write conflict, retrying", zap.Int("attempt", attempt))
			continue
		default:
			return nil, utils.NewInternalError("failed to save appointment", err)
		}
	}
	return nil, ErrSlotNoLongerAvailable
}

func (c *DefaultAppointmentCreator) scheduleCompletion(ctx context.Context, appt *models.Appointment, logger *zap.Logger) {
	if c.Scheduler == nil {
		return
	}
	if err := c.Scheduler.ScheduleCompletion(ctx, appt); err != nil {
		// The booking stands; the owner can still complete it by hand.
		logger.Warn("failed to schedule appointment completion",
			zap.String("appointmentID", appt.ID),
			zap.Error(err),
		)
	}
}

// mapLookupError passes client-facing errors through and hides the rest.
func mapLookupError(err error) error {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return utils.NewInternalError("failed to load availability", err)
}

func totals(services []models.Service) (duration int, price int64) {
	for _, svc := range services {
		duration += svc.Duration
		price += svc.Price
	}
	return duration, price
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (c *DefaultAppointmentCreator) maxAttempts() int {
	if c.MaxAttempts > 0 {
		return c.MaxAttempts
	}
	return DefaultMaxAttempts
}

func (c *DefaultAppointmentCreator) lockWait() time.Duration {
	if c.LockWait > 0 {
		return c.LockWait
	}
	return 5 * time.Second
}

func (c *DefaultAppointmentCreator) location() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.UTC
}

func (c *DefaultAppointmentCreator) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *DefaultAppointmentCreator) log() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}
