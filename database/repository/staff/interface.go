// File: database/repository/staff/interface.go
package staffRepo

import (
	"context"
	"errors"

	"salonbook/models"
	"salonbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("staff member not found")

type StaffRepository interface {
	Create(ctx context.Context, member *models.Staff) error
	Update(ctx context.Context, salonID, id string, input models.StaffInput) (*models.Staff, error)
	Delete(ctx context.Context, salonID, id string) error
	GetByID(ctx context.Context, salonID, id string) (*models.Staff, error)
	ListBySalon(ctx context.Context, salonID string) ([]models.Staff, error)
	CountBySalon(ctx context.Context, salonID string) (int, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

func NewMongoStaffRepo(db *mongo.Database) StaffRepository {
	return &mongoStaffRepo{coll: db.Collection(utils.StaffCollection)}
}
