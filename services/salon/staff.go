package salon

import (
	"context"
	"errors"
	"strings"
	"time"

	staffRepo "salonbook/database/repository/staff"
	"salonbook/models"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultSalonService) ListStaff(ctx context.Context, salonID string) ([]models.Staff, error) {
	staff, err := s.Staff.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, utils.NewInternalError("failed to list staff", err)
	}
	return staff, nil
}

func (s *DefaultSalonService) AddStaff(ctx context.Context, salonID string, input models.StaffInput) (*models.Staff, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidStaff
	}
	now := time.Now()
	member := &models.Staff{
		ID:        uuid.New().String(),
		SalonID:   salonID,
		Name:      name,
		Role:      strings.TrimSpace(input.Role),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Staff.Create(ctx, member); err != nil {
		return nil, utils.NewInternalError("failed to add staff member", err)
	}
	s.log().Info("staff member added", zap.String("salonID", salonID), zap.String("staffID", member.ID))
	return member, nil
}

func (s *DefaultSalonService) UpdateStaff(ctx context.Context, salonID, id string, input models.StaffInput) (*models.Staff, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Role = strings.TrimSpace(input.Role)
	if input.Name == "" {
		return nil, ErrInvalidStaff
	}
	member, err := s.Staff.Update(ctx, salonID, id, input)
	if err != nil {
		return nil, staffError(err)
	}
	return member, nil
}

// DeleteStaff removes a team member, lowering capacity for future queries.
// Existing appointments are left untouched.
func (s *DefaultSalonService) DeleteStaff(ctx context.Context, salonID, id string) error {
	if err := s.Staff.Delete(ctx, salonID, id); err != nil {
		return staffError(err)
	}
	s.log().Info("staff member removed", zap.String("salonID", salonID), zap.String("staffID", id))
	return nil
}

func staffError(err error) error {
	if errors.Is(err, staffRepo.ErrNotFound) {
		return ErrStaffNotFound
	}
	return utils.NewInternalError("staff update failed", err)
}
