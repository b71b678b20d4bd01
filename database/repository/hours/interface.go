// File: database/repository/hours/interface.go
package hoursRepo

import (
	"context"
	"errors"

	"salonbook/models"
	"salonbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("working hours not found")

// HoursRepository stores one WorkingHours record per salon and weekday.
type HoursRepository interface {
	ListBySalon(ctx context.Context, salonID string) ([]models.WorkingHours, error)
	GetForDay(ctx context.Context, salonID string, day models.DayOfWeek) (*models.WorkingHours, error)
	ReplaceWeek(ctx context.Context, salonID string, hours []models.WorkingHours) error
	EnsureIndexes(ctx context.Context) error
}

type mongoHoursRepo struct {
	coll *mongo.Collection
}

func NewMongoHoursRepo(db *mongo.Database) HoursRepository {
	return &mongoHoursRepo{coll: db.Collection(utils.WorkingHoursCollection)}
}
