// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"
	"errors"

	"salonbook/models"
	"salonbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("service not found")

// CatalogRepository stores the services each salon offers. Every lookup is
// scoped by salon ID.
type CatalogRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	Update(ctx context.Context, salonID, id string, input models.ServiceInput) (*models.Service, error)
	Delete(ctx context.Context, salonID, id string) error
	GetByID(ctx context.Context, salonID, id string) (*models.Service, error)
	GetByIDs(ctx context.Context, salonID string, ids []string) ([]models.Service, error)
	ListBySalon(ctx context.Context, salonID string) ([]models.Service, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

func NewMongoCatalogRepo(db *mongo.Database) CatalogRepository {
	return &mongoCatalogRepo{coll: db.Collection(utils.ServicesCollection)}
}
