package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	appointmentRepo "salonbook/database/repository/appointment"
	staffRepo "salonbook/database/repository/staff"
	"salonbook/models"
	"salonbook/services/availability"
	"salonbook/utils"

	"go.uber.org/zap"
)

// AppointmentStore is the persistence the manager needs.
type AppointmentStore interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListBySalon(ctx context.Context, salonID string) ([]models.Appointment, error)
	ListByDate(ctx context.Context, salonID, date string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, salonID, id string, next models.AppointmentStatus) (*models.Appointment, error)
	Delete(ctx context.Context, salonID, id string) error
}

// StaffLookup resolves a staff member within a salon.
type StaffLookup interface {
	GetByID(ctx context.Context, salonID, id string) (*models.Staff, error)
}

// AppointmentManager covers everything after an appointment is created.
type AppointmentManager interface {
	Get(ctx context.Context, id string) (*models.AppointmentDetail, error)
	ListAll(ctx context.Context, salonID string) ([]models.Appointment, error)
	ListByDate(ctx context.Context, salonID, date string) ([]models.Appointment, error)
	Cancel(ctx context.Context, salonID, id string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, salonID, id string, status models.AppointmentStatus) (*models.Appointment, error)
	Delete(ctx context.Context, salonID, id string) error
	Complete(ctx context.Context, id string) error
}

type DefaultAppointmentManager struct {
	Appointments AppointmentStore
	Salons       availability.SalonLookup
	Services     ServiceLookup
	Staff        StaffLookup
	Logger       *zap.Logger
}

// Get returns the public view of an appointment with its services, salon
// name and assigned staff member.
func (m *DefaultAppointmentManager) Get(ctx context.Context, id string) (*models.AppointmentDetail, error) {
	appt, err := m.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, m.storeError("get appointment", id, err)
	}

	detail := &models.AppointmentDetail{Appointment: *appt, Services: []models.Service{}}

	if salon, err := m.Salons.GetByID(ctx, appt.SalonID); err == nil {
		detail.SalonName = salon.Name
	} else {
		m.log().Warn("appointment salon lookup failed", zap.String("appointmentID", id), zap.Error(err))
	}

	services, err := m.Services.GetByIDs(ctx, appt.SalonID, appt.ServiceIDs)
	if err != nil {
		return nil, utils.NewInternalError("failed to load appointment services", err)
	}
	detail.Services = services

	if appt.StaffID != nil && m.Staff != nil {
		member, err := m.Staff.GetByID(ctx, appt.SalonID, *appt.StaffID)
		switch {
		case err == nil:
			detail.Staff = member
		case errors.Is(err, staffRepo.ErrNotFound):
			// staff member since removed
		default:
			return nil, utils.NewInternalError("failed to load assigned staff", err)
		}
	}
	return detail, nil
}

func (m *DefaultAppointmentManager) ListAll(ctx context.Context, salonID string) ([]models.Appointment, error) {
	appts, err := m.Appointments.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, utils.NewInternalError("failed to list appointments", err)
	}
	return appts, nil
}

func (m *DefaultAppointmentManager) ListByDate(ctx context.Context, salonID, date string) ([]models.Appointment, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, availability.ErrInvalidDate
	}
	appts, err := m.Appointments.ListByDate(ctx, salonID, date)
	if err != nil {
		return nil, utils.NewInternalError("failed to list appointments", err)
	}
	return appts, nil
}

// Cancel frees the appointment's capacity. Cancelling twice is a no-op.
func (m *DefaultAppointmentManager) Cancel(ctx context.Context, salonID, id string) (*models.Appointment, error) {
	return m.UpdateStatus(ctx, salonID, id, models.StatusCancelled)
}

// UpdateStatus applies a transition from the status table. Repeating the
// current status is accepted and changes nothing.
func (m *DefaultAppointmentManager) UpdateStatus(ctx context.Context, salonID, id string, status models.AppointmentStatus) (*models.Appointment, error) {
	status = models.AppointmentStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	appt, err := m.Appointments.UpdateStatus(ctx, salonID, id, status)
	if err == nil {
		utils.IncAppointmentStatus(string(status))
		m.log().Info("appointment status changed",
			zap.String("salonID", salonID),
			zap.String("appointmentID", id),
			zap.String("status", string(status)),
		)
		return appt, nil
	}
	if errors.Is(err, appointmentRepo.ErrStatusConflict) && appt != nil {
		if appt.Status == status {
			return appt, nil
		}
		return nil, ErrInvalidTransition.WithMessage("a %s appointment cannot be changed to %s", appt.Status, status)
	}
	return nil, m.storeError("update appointment status", id, err)
}

// Delete removes the appointment entirely, unlike Cancel.
func (m *DefaultAppointmentManager) Delete(ctx context.Context, salonID, id string) error {
	if err := m.Appointments.Delete(ctx, salonID, id); err != nil {
		return m.storeError("delete appointment", id, err)
	}
	m.log().Info("appointment deleted", zap.String("salonID", salonID), zap.String("appointmentID", id))
	return nil
}

// Complete marks a finished appointment complete. Appointments that were
// cancelled, already completed or deleted are left alone.
func (m *DefaultAppointmentManager) Complete(ctx context.Context, id string) error {
	_, err := m.Appointments.UpdateStatus(ctx, "", id, models.StatusComplete)
	switch {
	case err == nil:
		utils.IncAppointmentStatus(string(models.StatusComplete))
		return nil
	case errors.Is(err, appointmentRepo.ErrStatusConflict), errors.Is(err, appointmentRepo.ErrNotFound):
		m.log().Debug("skipping completion", zap.String("appointmentID", id), zap.Error(err))
		return nil
	default:
		return err
	}
}

func (m *DefaultAppointmentManager) storeError(op, id string, err error) error {
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		return ErrAppointmentNotFound
	}
	m.log().Error("appointment store failure", zap.String("op", op), zap.String("appointmentID", id), zap.Error(err))
	return utils.NewInternalError("failed to "+op, err)
}

func (m *DefaultAppointmentManager) log() *zap.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return zap.NewNop()
}
