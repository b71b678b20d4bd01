// File: database/repository/staff/crud.go
package staffRepo

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

func (r *mongoStaffRepo) Create(ctx context.Context, member *models.Staff) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, member); err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

func (r *mongoStaffRepo) Update(ctx context.Context, salonID, id string, input models.StaffInput) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":      input.Name,
		"role":      input.Role,
		"updatedAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var member models.Staff
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id, "salonId": salonID}, update, opts).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update staff member %s: %w", id, err)
	}
	return &member, nil
}

func (r *mongoStaffRepo) Delete(ctx context.Context, salonID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "salonId": salonID})
	if err != nil {
		return fmt.Errorf("failed to delete staff member %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoStaffRepo) GetByID(ctx context.Context, salonID, id string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var member models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "salonId": salonID}).Decode(&member); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch staff member %s: %w", id, err)
	}
	return &member, nil
}

func (r *mongoStaffRepo) ListBySalon(ctx context.Context, salonID string) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"salonId": salonID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer cursor.Close(ctx)

	staff := []models.Staff{}
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return staff, nil
}

// CountBySalon returns the salon's head count, which is its concurrent
// appointment capacity.
func (r *mongoStaffRepo) CountBySalon(ctx context.Context, salonID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"salonId": salonID})
	if err != nil {
		return 0, fmt.Errorf("failed to count staff: %w", err)
	}
	return int(n), nil
}

func (r *mongoStaffRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_id")},
		{Keys: bson.D{{Key: "salonId", Value: 1}}, Options: options.Index().SetName("salon_idx")},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create staff indexes: %w", err)
	}
	return nil
}
