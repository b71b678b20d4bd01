// File: database/repository/salon/interface.go
package salonRepo

import (
	"context"
	"errors"

	"salonbook/models"
	"salonbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound    = errors.New("salon not found")
	ErrOwnerHasOne = errors.New("owner already has a salon")
)

type SalonRepository interface {
	Create(ctx context.Context, salon *models.Salon) error
	GetByID(ctx context.Context, id string) (*models.Salon, error)
	GetByOwnerID(ctx context.Context, ownerID string) (*models.Salon, error)
	UpdateProfile(ctx context.Context, id string, input models.SalonInput) (*models.Salon, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoSalonRepo struct {
	coll *mongo.Collection
}

// NewMongoSalonRepo constructs a MongoDB SalonRepository on db.
func NewMongoSalonRepo(db *mongo.Database) SalonRepository {
	return &mongoSalonRepo{coll: db.Collection(utils.SalonsCollection)}
}
