// File: database/repository/hours/crud.go
package hoursRepo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListBySalon returns the stored days ordered Monday to Sunday.
func (r *mongoHoursRepo) ListBySalon(ctx context.Context, salonID string) ([]models.WorkingHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"salonId": salonID})
	if err != nil {
		return nil, fmt.Errorf("failed to query working hours: %w", err)
	}
	defer cursor.Close(ctx)

	hours := []models.WorkingHours{}
	if err := cursor.All(ctx, &hours); err != nil {
		return nil, fmt.Errorf("failed to decode working hours: %w", err)
	}
	sort.Slice(hours, func(i, j int) bool {
		return hours[i].DayOfWeek.Index() < hours[j].DayOfWeek.Index()
	})
	return hours, nil
}

func (r *mongoHoursRepo) GetForDay(ctx context.Context, salonID string, day models.DayOfWeek) (*models.WorkingHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var wh models.WorkingHours
	err := r.coll.FindOne(ctx, bson.M{"salonId": salonID, "dayOfWeek": day}).Decode(&wh)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch working hours for %s: %w", day, err)
	}
	return &wh, nil
}

// ReplaceWeek upserts every given day and removes days that are no longer
// listed, in one ordered bulk write.
func (r *mongoHoursRepo) ReplaceWeek(ctx context.Context, salonID string, hours []models.WorkingHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	days := make([]models.DayOfWeek, 0, len(hours))
	writes := make([]mongo.WriteModel, 0, len(hours)+1)
	for _, wh := range hours {
		wh.SalonID = salonID
		days = append(days, wh.DayOfWeek)
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"salonId": salonID, "dayOfWeek": wh.DayOfWeek}).
			SetReplacement(wh).
			SetUpsert(true))
	}
	writes = append(writes, mongo.NewDeleteManyModel().
		SetFilter(bson.M{"salonId": salonID, "dayOfWeek": bson.M{"$nin": days}}))

	if _, err := r.coll.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("failed to replace working hours: %w", err)
	}
	return nil
}

func (r *mongoHoursRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "salonId", Value: 1}, {Key: "dayOfWeek", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("salon_day_unique"),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create working hours indexes: %w", err)
	}
	return nil
}
