// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"salonbook/models"
	"salonbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = errors.New("appointment not found")
	// ErrCapacityExceeded means the interval was already fully booked when
	// the insert transaction re-counted overlaps.
	ErrCapacityExceeded = errors.New("no capacity left for the requested interval")
	// ErrWriteConflict means a concurrent booking for the same salon-day won
	// the transaction. The caller may retry.
	ErrWriteConflict = errors.New("concurrent booking write conflict")
	// ErrStatusConflict means the appointment's current status does not
	// allow the requested transition.
	ErrStatusConflict = errors.New("appointment status does not allow this change")
)

type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListBySalon(ctx context.Context, salonID string) ([]models.Appointment, error)
	ListByDate(ctx context.Context, salonID, date string) ([]models.Appointment, error)
	ListActiveOnDate(ctx context.Context, salonID, date string) ([]models.Appointment, error)
	InsertWithinCapacity(ctx context.Context, appt *models.Appointment, staffCount int) error
	UpdateStatus(ctx context.Context, salonID, id string, next models.AppointmentStatus) (*models.Appointment, error)
	Delete(ctx context.Context, salonID, id string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoAppointmentRepo struct {
	coll   *mongo.Collection
	guards *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB AppointmentRepository on db.
// Bookings use multi-document transactions, so db must live on a replica set.
func NewMongoAppointmentRepo(db *mongo.Database) AppointmentRepository {
	return &mongoAppointmentRepo{
		coll:   db.Collection(utils.AppointmentsCollection),
		guards: db.Collection(utils.AppointmentGuardsCollection),
	}
}
