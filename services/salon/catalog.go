package salon

import (
	"context"
	"errors"
	"strings"
	"time"

	catalogRepo "salonbook/database/repository/catalog"
	"salonbook/models"
	"salonbook/utils"

	"github.com/google/uuid"
)

// MinServiceDuration is the shortest bookable service, in minutes.
const MinServiceDuration = 5

func validateService(input models.ServiceInput) (models.ServiceInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || input.Price < 0 || input.Duration < MinServiceDuration {
		return input, ErrInvalidService
	}
	return input, nil
}

func (s *DefaultSalonService) ListServices(ctx context.Context, salonID string) ([]models.Service, error) {
	if _, err := s.GetSalon(ctx, salonID); err != nil {
		return nil, err
	}
	services, err := s.Catalog.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, utils.NewInternalError("failed to list services", err)
	}
	return services, nil
}

func (s *DefaultSalonService) AddService(ctx context.Context, salonID string, input models.ServiceInput) (*models.Service, error) {
	input, err := validateService(input)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	svc := &models.Service{
		ID:        uuid.New().String(),
		SalonID:   salonID,
		Name:      input.Name,
		Price:     input.Price,
		Duration:  input.Duration,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Catalog.Create(ctx, svc); err != nil {
		return nil, utils.NewInternalError("failed to add service", err)
	}
	return svc, nil
}

func (s *DefaultSalonService) UpdateService(ctx context.Context, salonID, id string, input models.ServiceInput) (*models.Service, error) {
	input, err := validateService(input)
	if err != nil {
		return nil, err
	}
	svc, err := s.Catalog.Update(ctx, salonID, id, input)
	if err != nil {
		return nil, serviceError(err)
	}
	return svc, nil
}

func (s *DefaultSalonService) DeleteService(ctx context.Context, salonID, id string) error {
	if err := s.Catalog.Delete(ctx, salonID, id); err != nil {
		return serviceError(err)
	}
	return nil
}

func serviceError(err error) error {
	if errors.Is(err, catalogRepo.ErrNotFound) {
		return ErrServiceNotFound
	}
	return utils.NewInternalError("service update failed", err)
}
