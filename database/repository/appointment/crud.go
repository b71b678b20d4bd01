// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateStatus moves the appointment to next if its current status allows
// it. The check and the write are a single conditional update. An empty
// salonID matches any salon.
//
// On ErrStatusConflict the current appointment is returned alongside the
// error so callers can tell an idempotent repeat from a real conflict.
func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, salonID, id string, next models.AppointmentStatus) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": models.PredecessorsOf(next)},
	}
	if salonID != "" {
		filter["salonId"] = salonID
	}
	update := bson.M{"$set": bson.M{"status": next, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appt)
	if err == nil {
		return &appt, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update appointment %s status: %w", id, err)
	}

	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	if salonID != "" && current.SalonID != salonID {
		return nil, ErrNotFound
	}
	return current, ErrStatusConflict
}

func (r *mongoAppointmentRepo) Delete(ctx context.Context, salonID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "salonId": salonID})
	if err != nil {
		return fmt.Errorf("failed to delete appointment %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
