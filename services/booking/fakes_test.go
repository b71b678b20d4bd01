package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	appointmentRepo "salonbook/database/repository/appointment"
	hoursRepo "salonbook/database/repository/hours"
	salonRepo "salonbook/database/repository/salon"
	staffRepo "salonbook/database/repository/staff"
	"salonbook/models"
	"salonbook/services/availability"
)

// 2030-01-01 is a Tuesday; 2030-01-07 the following Monday.
var testNow = time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)

const testMonday = "2030-01-07"

type fakeSalon struct {
	mu       sync.Mutex
	salons   map[string]models.Salon
	hours    map[models.DayOfWeek]models.WorkingHours
	staff    int
	services map[string]models.Service
}

func newFakeSalon(staff int) *fakeSalon {
	return &fakeSalon{
		salons: map[string]models.Salon{"s1": {ID: "s1", Name: "Glow Studio"}},
		hours: map[models.DayOfWeek]models.WorkingHours{
			models.Monday: {DayOfWeek: models.Monday, OpenTime: 9 * 60, CloseTime: 18 * 60},
			models.Sunday: {DayOfWeek: models.Sunday, IsClosed: true},
		},
		staff: staff,
		services: map[string]models.Service{
			"cut":   {ID: "cut", SalonID: "s1", Name: "Haircut", Price: 50000, Duration: 30},
			"color": {ID: "color", SalonID: "s1", Name: "Colour", Price: 120000, Duration: 60},
			"other": {ID: "other", SalonID: "s2", Name: "Elsewhere", Price: 100, Duration: 30},
		},
	}
}

func (f *fakeSalon) GetByID(_ context.Context, id string) (*models.Salon, error) {
	s, ok := f.salons[id]
	if !ok {
		return nil, salonRepo.ErrNotFound
	}
	return &s, nil
}

func (f *fakeSalon) GetForDay(_ context.Context, _ string, day models.DayOfWeek) (*models.WorkingHours, error) {
	wh, ok := f.hours[day]
	if !ok {
		return nil, hoursRepo.ErrNotFound
	}
	return &wh, nil
}

func (f *fakeSalon) CountBySalon(context.Context, string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.staff, nil
}

func (f *fakeSalon) GetByIDs(_ context.Context, salonID string, ids []string) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		if svc, ok := f.services[id]; ok && svc.SalonID == salonID {
			out = append(out, svc)
		}
	}
	return out, nil
}

type fakeStaff map[string]models.Staff

func (f fakeStaff) GetByID(_ context.Context, salonID, id string) (*models.Staff, error) {
	m, ok := f[id]
	if !ok || m.SalonID != salonID {
		return nil, staffRepo.ErrNotFound
	}
	return &m, nil
}

// fakeAppointments mimics the Mongo repository. InsertWithinCapacity is
// atomic under mu, like the real transaction.
type fakeAppointments struct {
	mu        sync.Mutex
	appts     map[string]models.Appointment
	conflicts int // number of upcoming inserts that fail with ErrWriteConflict
	inserts   int
}

func newFakeAppointments() *fakeAppointments {
	return &fakeAppointments{appts: map[string]models.Appointment{}}
}

func (f *fakeAppointments) ListActiveOnDate(_ context.Context, salonID, date string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if a.SalonID == salonID && a.Date == date && a.Active() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointments) InsertWithinCapacity(_ context.Context, appt *models.Appointment, staffCount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts++
	if f.conflicts > 0 {
		f.conflicts--
		return appointmentRepo.ErrWriteConflict
	}
	overlapping := 0
	for _, a := range f.appts {
		if a.SalonID == appt.SalonID && a.Active() && availability.Overlaps(appt.StartAt, appt.EndAt, a.StartAt, a.EndAt) {
			overlapping++
		}
	}
	if overlapping >= staffCount {
		return appointmentRepo.ErrCapacityExceeded
	}
	f.appts[appt.ID] = *appt
	return nil
}

func (f *fakeAppointments) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	return &a, nil
}

func (f *fakeAppointments) list(keep func(models.Appointment) bool) []models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Appointment{}
	for _, a := range f.appts {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartAt.Before(out[j].StartAt) })
	return out
}

func (f *fakeAppointments) ListBySalon(_ context.Context, salonID string) ([]models.Appointment, error) {
	return f.list(func(a models.Appointment) bool { return a.SalonID == salonID }), nil
}

func (f *fakeAppointments) ListByDate(_ context.Context, salonID, date string) ([]models.Appointment, error) {
	return f.list(func(a models.Appointment) bool { return a.SalonID == salonID && a.Date == date }), nil
}

func (f *fakeAppointments) UpdateStatus(_ context.Context, salonID, id string, next models.AppointmentStatus) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appts[id]
	if !ok || (salonID != "" && a.SalonID != salonID) {
		return nil, appointmentRepo.ErrNotFound
	}
	if !a.Status.CanTransitionTo(next) {
		return &a, appointmentRepo.ErrStatusConflict
	}
	a.Status = next
	f.appts[id] = a
	return &a, nil
}

func (f *fakeAppointments) Delete(_ context.Context, salonID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appts[id]
	if !ok || a.SalonID != salonID {
		return appointmentRepo.ErrNotFound
	}
	delete(f.appts, id)
	return nil
}

type recordingScheduler struct {
	mu        sync.Mutex
	scheduled []string
	err       error
}

func (r *recordingScheduler) ScheduleCompletion(_ context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled = append(r.scheduled, appt.ID)
	return r.err
}

type testEnv struct {
	salon     *fakeSalon
	appts     *fakeAppointments
	slots     *availability.DefaultSlotService
	creator   *DefaultAppointmentCreator
	manager   *DefaultAppointmentManager
	scheduler *recordingScheduler
}

func newTestEnv(staff int) *testEnv {
	salon := newFakeSalon(staff)
	appts := newFakeAppointments()
	now := func() time.Time { return testNow }

	slots := &availability.DefaultSlotService{
		Salons:       salon,
		Hours:        salon,
		Staff:        salon,
		Appointments: appts,
		Granularity:  30,
		Location:     time.UTC,
		Now:          now,
	}
	scheduler := &recordingScheduler{}

	return &testEnv{
		salon:     salon,
		appts:     appts,
		slots:     slots,
		scheduler: scheduler,
		creator: &DefaultAppointmentCreator{
			Salons:       salon,
			Slots:        slots,
			Services:     salon,
			Appointments: appts,
			Locker:       NewLocalLocker(),
			Scheduler:    scheduler,
			MaxAttempts:  3,
			Location:     time.UTC,
			Now:          now,
		},
		manager: &DefaultAppointmentManager{
			Appointments: appts,
			Salons:       salon,
			Services:     salon,
			Staff:        fakeStaff{"st1": {ID: "st1", SalonID: "s1", Name: "Meera", Role: "Stylist"}},
		},
	}
}

func bookingRequest(clock string, services ...string) models.CreateAppointmentRequest {
	return models.CreateAppointmentRequest{
		SalonID:       "s1",
		Services:      services,
		Date:          testMonday,
		Time:          clock,
		CustomerName:  "Priya",
		CustomerPhone: "9876543210",
	}
}
