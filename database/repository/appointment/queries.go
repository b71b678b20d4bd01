// File: database/repository/appointment/queries.go
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

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

// ListBySalon returns every appointment of the salon, newest first.
func (r *mongoAppointmentRepo) ListBySalon(ctx context.Context, salonID string) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"salonId": salonID}, opts)
}

// ListByDate returns the salon's appointments on date ordered by start.
func (r *mongoAppointmentRepo) ListByDate(ctx context.Context, salonID, date string) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startAt", Value: 1}})
	return r.find(ctx, bson.M{"salonId": salonID, "date": date}, opts)
}

// ListActiveOnDate returns the appointments on date that still hold capacity.
func (r *mongoAppointmentRepo) ListActiveOnDate(ctx context.Context, salonID, date string) ([]models.Appointment, error) {
	filter := bson.M{
		"salonId": salonID,
		"date":    date,
		"status":  bson.M{"$ne": models.StatusCancelled},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startAt", Value: 1}})
	return r.find(ctx, filter, opts)
}

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

func (r *mongoAppointmentRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Overlap counting and per-day listing.
		{
			Keys:    bson.D{{Key: "salonId", Value: 1}, {Key: "date", Value: 1}, {Key: "startAt", Value: 1}},
			Options: options.Index().SetName("salon_date_start_idx"),
		},
		{
			Keys:    bson.D{{Key: "salonId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("salon_created_idx"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
