// File: database/repository/owner/interface.go
package ownerRepo

import (
	"context"
	"errors"

	"salonbook/models"
	"salonbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound       = errors.New("owner not found")
	ErrDuplicateEmail = errors.New("an account with this email already exists")
)

// OwnerRepository persists salon owner accounts.
type OwnerRepository interface {
	Create(ctx context.Context, owner *models.Owner) error
	GetByID(ctx context.Context, id string) (*models.Owner, error)
	GetByEmail(ctx context.Context, email string) (*models.Owner, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoOwnerRepo struct {
	coll *mongo.Collection
}

// NewMongoOwnerRepo constructs a MongoDB OwnerRepository on db.
func NewMongoOwnerRepo(db *mongo.Database) OwnerRepository {
	return &mongoOwnerRepo{coll: db.Collection(utils.OwnersCollection)}
}
