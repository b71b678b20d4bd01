package routes

import (
	"context"

	"salonbook/models"
	"salonbook/services/availability"

	"github.com/stretchr/testify/mock"
)

type mockSlots struct{ mock.Mock }

func (m *mockSlots) AvailableSlots(ctx context.Context, salonID, date string, duration int) ([]models.Slot, error) {
	args := m.Called(ctx, salonID, date, duration)
	slots, _ := args.Get(0).([]models.Slot)
	return slots, args.Error(1)
}

func (m *mockSlots) Availability(ctx context.Context, salonID, date string, duration int) (*availability.DayAvailability, error) {
	args := m.Called(ctx, salonID, date, duration)
	day, _ := args.Get(0).(*availability.DayAvailability)
	return day, args.Error(1)
}

type mockCreator struct{ mock.Mock }

func (m *mockCreator) Create(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	args := m.Called(ctx, req)
	appt, _ := args.Get(0).(*models.Appointment)
	return appt, args.Error(1)
}

type mockManager struct{ mock.Mock }

func (m *mockManager) Get(ctx context.Context, id string) (*models.AppointmentDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*models.AppointmentDetail)
	return d, args.Error(1)
}

func (m *mockManager) ListAll(ctx context.Context, salonID string) ([]models.Appointment, error) {
	args := m.Called(ctx, salonID)
	a, _ := args.Get(0).([]models.Appointment)
	return a, args.Error(1)
}

func (m *mockManager) ListByDate(ctx context.Context, salonID, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, salonID, date)
	a, _ := args.Get(0).([]models.Appointment)
	return a, args.Error(1)
}

func (m *mockManager) Cancel(ctx context.Context, salonID, id string) (*models.Appointment, error) {
	args := m.Called(ctx, salonID, id)
	a, _ := args.Get(0).(*models.Appointment)
	return a, args.Error(1)
}

func (m *mockManager) UpdateStatus(ctx context.Context, salonID, id string, status models.AppointmentStatus) (*models.Appointment, error) {
	args := m.Called(ctx, salonID, id, status)
	a, _ := args.Get(0).(*models.Appointment)
	return a, args.Error(1)
}

func (m *mockManager) Delete(ctx context.Context, salonID, id string) error {
	return m.Called(ctx, salonID, id).Error(0)
}

func (m *mockManager) Complete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockSalons struct{ mock.Mock }

func (m *mockSalons) CreateSalon(ctx context.Context, ownerID string, in models.SalonInput) (*models.Salon, error) {
	args := m.Called(ctx, ownerID, in)
	s, _ := args.Get(0).(*models.Salon)
	return s, args.Error(1)
}

func (m *mockSalons) UpdateSalon(ctx context.Context, salonID string, in models.SalonInput) (*models.Salon, error) {
	args := m.Called(ctx, salonID, in)
	s, _ := args.Get(0).(*models.Salon)
	return s, args.Error(1)
}

func (m *mockSalons) GetSalon(ctx context.Context, salonID string) (*models.Salon, error) {
	args := m.Called(ctx, salonID)
	s, _ := args.Get(0).(*models.Salon)
	return s, args.Error(1)
}

func (m *mockSalons) GetSalonByOwner(ctx context.Context, ownerID string) (*models.Salon, error) {
	args := m.Called(ctx, ownerID)
	s, _ := args.Get(0).(*models.Salon)
	return s, args.Error(1)
}

func (m *mockSalons) GetHours(ctx context.Context, salonID string) ([]models.WorkingHours, error) {
	args := m.Called(ctx, salonID)
	h, _ := args.Get(0).([]models.WorkingHours)
	return h, args.Error(1)
}

func (m *mockSalons) SetHours(ctx context.Context, salonID string, hours []models.WorkingHours) ([]models.WorkingHours, error) {
	args := m.Called(ctx, salonID, hours)
	h, _ := args.Get(0).([]models.WorkingHours)
	return h, args.Error(1)
}

func (m *mockSalons) ListServices(ctx context.Context, salonID string) ([]models.Service, error) {
	args := m.Called(ctx, salonID)
	s, _ := args.Get(0).([]models.Service)
	return s, args.Error(1)
}

func (m *mockSalons) AddService(ctx context.Context, salonID string, in models.ServiceInput) (*models.Service, error) {
	args := m.Called(ctx, salonID, in)
	s, _ := args.Get(0).(*models.Service)
	return s, args.Error(1)
}

func (m *mockSalons) UpdateService(ctx context.Context, salonID, id string, in models.ServiceInput) (*models.Service, error) {
	args := m.Called(ctx, salonID, id, in)
	s, _ := args.Get(0).(*models.Service)
	return s, args.Error(1)
}

func (m *mockSalons) DeleteService(ctx context.Context, salonID, id string) error {
	return m.Called(ctx, salonID, id).Error(0)
}

func (m *mockSalons) ListStaff(ctx context.Context, salonID string) ([]models.Staff, error) {
	args := m.Called(ctx, salonID)
	s, _ := args.Get(0).([]models.Staff)
	return s, args.Error(1)
}

func (m *mockSalons) AddStaff(ctx context.Context, salonID string, in models.StaffInput) (*models.Staff, error) {
	args := m.Called(ctx, salonID, in)
	s, _ := args.Get(0).(*models.Staff)
	return s, args.Error(1)
}

func (m *mockSalons) UpdateStaff(ctx context.Context, salonID, id string, in models.StaffInput) (*models.Staff, error) {
	args := m.Called(ctx, salonID, id, in)
	s, _ := args.Get(0).(*models.Staff)
	return s, args.Error(1)
}

func (m *mockSalons) DeleteStaff(ctx context.Context, salonID, id string) error {
	return m.Called(ctx, salonID, id).Error(0)
}

type mockOwners struct{ mock.Mock }

func (m *mockOwners) Register(ctx context.Context, req models.RegisterOwnerRequest) (*models.Owner, error) {
	args := m.Called(ctx, req)
	o, _ := args.Get(0).(*models.Owner)
	return o, args.Error(1)
}

func (m *mockOwners) Login(ctx context.Context, req models.LoginRequest) (string, *models.OwnerSession, error) {
	args := m.Called(ctx, req)
	s, _ := args.Get(1).(*models.OwnerSession)
	return args.String(0), s, args.Error(2)
}

func (m *mockOwners) Verify(ctx context.Context, token string) (*models.OwnerSession, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(*models.OwnerSession)
	return s, args.Error(1)
}

func (m *mockOwners) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
