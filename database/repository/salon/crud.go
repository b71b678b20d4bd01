// File: database/repository/salon/crud.go
package salonRepo

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

func (r *mongoSalonRepo) Create(ctx context.Context, salon *models.Salon) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, salon); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrOwnerHasOne
		}
		return fmt.Errorf("failed to create salon: %w", err)
	}
	return nil
}

func (r *mongoSalonRepo) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoSalonRepo) GetByOwnerID(ctx context.Context, ownerID string) (*models.Salon, error) {
	return r.findOne(ctx, bson.M{"ownerId": ownerID})
}

func (r *mongoSalonRepo) findOne(ctx context.Context, filter bson.M) (*models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var salon models.Salon
	if err := r.coll.FindOne(ctx, filter).Decode(&salon); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch salon: %w", err)
	}
	return &salon, nil
}

func (r *mongoSalonRepo) UpdateProfile(ctx context.Context, id string, input models.SalonInput) (*models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        input.Name,
		"address":     input.Address,
		"city":        input.City,
		"description": input.Description,
		"updatedAt":   time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var salon models.Salon
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&salon); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update salon %s: %w", id, err)
	}
	return &salon, nil
}

func (r *mongoSalonRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_id")},
		// one salon per owner
		{Keys: bson.D{{Key: "ownerId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_owner")},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create salon indexes: %w", err)
	}
	return nil
}
