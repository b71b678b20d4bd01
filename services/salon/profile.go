package salon

import (
	"context"
	"errors"
	"strings"
	"time"

	salonRepo "salonbook/database/repository/salon"
	"salonbook/models"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateSalon registers the owner's salon and opens it 09:00-20:00 every
// day until the owner edits the hours.
func (s *DefaultSalonService) CreateSalon(ctx context.Context, ownerID string, input models.SalonInput) (*models.Salon, error) {
	input, err := normalizeSalon(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.Salons.GetByOwnerID(ctx, ownerID); err == nil {
		return nil, ErrSalonExists
	} else if !errors.Is(err, salonRepo.ErrNotFound) {
		return nil, utils.NewInternalError("failed to look up salon", err)
	}

	now := time.Now()
	salon := &models.Salon{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        input.Name,
		Address:     input.Address,
		City:        input.City,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Salons.Create(ctx, salon); err != nil {
		if errors.Is(err, salonRepo.ErrOwnerHasOne) {
			return nil, ErrSalonExists
		}
		return nil, utils.NewInternalError("failed to create salon", err)
	}

	if err := s.Hours.ReplaceWeek(ctx, salon.ID, DefaultWeek()); err != nil {
		s.log().Warn("failed to seed default working hours", zap.String("salonID", salon.ID), zap.Error(err))
	}

	s.log().Info("salon created", zap.String("salonID", salon.ID), zap.String("ownerID", ownerID))
	return salon, nil
}

func (s *DefaultSalonService) UpdateSalon(ctx context.Context, salonID string, input models.SalonInput) (*models.Salon, error) {
	input, err := normalizeSalon(input)
	if err != nil {
		return nil, err
	}
	salon, err := s.Salons.UpdateProfile(ctx, salonID, input)
	if err != nil {
		return nil, salonError(err)
	}
	return salon, nil
}

func (s *DefaultSalonService) GetSalon(ctx context.Context, salonID string) (*models.Salon, error) {
	salon, err := s.Salons.GetByID(ctx, salonID)
	if err != nil {
		return nil, salonError(err)
	}
	return salon, nil
}

func (s *DefaultSalonService) GetSalonByOwner(ctx context.Context, ownerID string) (*models.Salon, error) {
	salon, err := s.Salons.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, salonError(err)
	}
	return salon, nil
}

func normalizeSalon(input models.SalonInput) (models.SalonInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Address = strings.TrimSpace(input.Address)
	input.City = strings.TrimSpace(input.City)
	input.Description = strings.TrimSpace(input.Description)
	if input.Name == "" || input.Address == "" || input.City == "" {
		return input, ErrInvalidSalon
	}
	return input, nil
}

func salonError(err error) error {
	if errors.Is(err, salonRepo.ErrNotFound) {
		return ErrSalonNotFound
	}
	return utils.NewInternalError("salon lookup failed", err)
}
