package salon

import (
	"context"

	catalogRepo "salonbook/database/repository/catalog"
	hoursRepo "salonbook/database/repository/hours"
	salonRepo "salonbook/database/repository/salon"
	staffRepo "salonbook/database/repository/staff"
	"salonbook/models"

	"go.uber.org/zap"
)

// SalonService manages a salon's profile and the data slot availability is
// derived from: weekly hours, the service menu and the team.
type SalonService interface {
	CreateSalon(ctx context.Context, ownerID string, input models.SalonInput) (*models.Salon, error)
	UpdateSalon(ctx context.Context, salonID string, input models.SalonInput) (*models.Salon, error)
	GetSalon(ctx context.Context, salonID string) (*models.Salon, error)
	GetSalonByOwner(ctx context.Context, ownerID string) (*models.Salon, error)

	GetHours(ctx context.Context, salonID string) ([]models.WorkingHours, error)
	SetHours(ctx context.Context, salonID string, hours []models.WorkingHours) ([]models.WorkingHours, error)

	ListServices(ctx context.Context, salonID string) ([]models.Service, error)
	AddService(ctx context.Context, salonID string, input models.ServiceInput) (*models.Service, error)
	UpdateService(ctx context.Context, salonID, id string, input models.ServiceInput) (*models.Service, error)
	DeleteService(ctx context.Context, salonID, id string) error

	ListStaff(ctx context.Context, salonID string) ([]models.Staff, error)
	AddStaff(ctx context.Context, salonID string, input models.StaffInput) (*models.Staff, error)
	UpdateStaff(ctx context.Context, salonID, id string, input models.StaffInput) (*models.Staff, error)
	DeleteStaff(ctx context.Context, salonID, id string) error
}

// DefaultSalonService implements SalonService on the Mongo repositories.
type DefaultSalonService struct {
	Salons  salonRepo.SalonRepository
	Hours   hoursRepo.HoursRepository
	Catalog catalogRepo.CatalogRepository
	Staff   staffRepo.StaffRepository
	Logger  *zap.Logger
}

func (s *DefaultSalonService) log() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
