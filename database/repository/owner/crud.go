// File: database/repository/owner/crud.go
package ownerRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoOwnerRepo) Create(ctx context.Context, owner *models.Owner) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	owner.Email = strings.ToLower(strings.TrimSpace(owner.Email))
	if _, err := r.coll.InsertOne(ctx, owner); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create owner: %w", err)
	}
	return nil
}

func (r *mongoOwnerRepo) GetByID(ctx context.Context, id string) (*models.Owner, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoOwnerRepo) GetByEmail(ctx context.Context, email string) (*models.Owner, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
}

func (r *mongoOwnerRepo) findOne(ctx context.Context, filter bson.M) (*models.Owner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var owner models.Owner
	if err := r.coll.FindOne(ctx, filter).Decode(&owner); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch owner: %w", err)
	}
	return &owner, nil
}

// SetTokenHash stores the hash of the owner's active session token. An empty
// hash ends the session.
func (r *mongoOwnerRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"token_hash": tokenHash, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update token hash: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoOwnerRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_id")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_email")},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create owner indexes: %w", err)
	}
	return nil
}
