package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salonbook/handlers"
	"salonbook/models"
	"salonbook/services/availability"
	"salonbook/services/booking"
	"salonbook/services/owner"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetLogger(zap.NewNop())
	if err := utils.RegisterBindingValidations(); err != nil {
		panic(err)
	}
}

type testServer struct {
	router  *gin.Engine
	slots   *mockSlots
	creator *mockCreator
	manager *mockManager
	salons  *mockSalons
	owners  *mockOwners
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		slots:   &mockSlots{},
		creator: &mockCreator{},
		manager: &mockManager{},
		salons:  &mockSalons{},
		owners:  &mockOwners{},
	}
	ts.owners.On("Verify", mock.Anything, "owner-token").Return(&models.OwnerSession{OwnerID: "o1", SalonID: "s1"}, nil).Maybe()
	ts.owners.On("Verify", mock.Anything, "new-owner-token").Return(&models.OwnerSession{OwnerID: "o2"}, nil).Maybe()
	ts.owners.On("Verify", mock.Anything, mock.Anything).Return(nil, owner.ErrUnauthorized).Maybe()

	hb := handlers.NewHandlerBundle(
		ts.owners, "token",
		handlers.NewAvailabilityHandler(ts.slots),
		handlers.NewBookingHandler(ts.creator, ts.manager),
		handlers.NewSalonHandler(ts.salons),
		handlers.NewAuthHandler(ts.owners, ts.salons, "token", false, time.Hour),
	)
	ts.router = gin.New()
	RegisterRoutes(ts.router, hb, []string{"http://localhost:3000"})

	t.Cleanup(func() {
		ts.slots.AssertExpectations(t)
		ts.creator.AssertExpectations(t)
		ts.manager.AssertExpectations(t)
		ts.salons.AssertExpectations(t)
	})
	return ts
}

func (ts *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAvailableSlotsRoute(t *testing.T) {
	ts := newTestServer(t)
	ts.slots.On("AvailableSlots", mock.Anything, "s1", "2030-01-07", 45).
		Return([]models.Slot{{Time: models.ClockTime(9 * 60), CapacityLeft: 2}, {Time: models.ClockTime(9*60 + 30), CapacityLeft: 0}}, nil)
	ts.slots.On("AvailableSlots", mock.Anything, "missing", "2030-01-07", 30).
		Return(nil, availability.ErrSalonNotFound)

	w := ts.do(http.MethodPost, "/slots/available", "", gin.H{"salonId": "s1", "date": "2030-01-07", "duration": 45})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"slots":[{"time":"09:00","capacityLeft":2},{"time":"09:30","capacityLeft":0}]}`, w.Body.String())

	w = ts.do(http.MethodPost, "/slots/available", "", gin.H{"salonId": "missing", "date": "2030-01-07", "duration": 30})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SalonNotFound", decode(t, w)["code"])

	w = ts.do(http.MethodPost, "/slots/available", "", gin.H{"date": "2030-01-07"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "InvalidRequest", decode(t, w)["code"])
}

func TestCreateAppointmentRoute(t *testing.T) {
	ts := newTestServer(t)
	ok := models.CreateAppointmentRequest{
		SalonID: "s1", Services: []string{"cut"}, Date: "2030-01-07", Time: "10:00",
		CustomerName: "Asha", CustomerPhone: "9876543210",
	}
	taken := ok
	taken.Time = "11:00"
	badPhone := ok
	badPhone.CustomerPhone = "123"

	ts.creator.On("Create", mock.Anything, ok).Return(&models.Appointment{ID: "a1", SalonID: "s1", Status: models.StatusBooked}, nil)
	ts.creator.On("Create", mock.Anything, taken).Return(nil, booking.ErrSlotNoLongerAvailable)
	ts.creator.On("Create", mock.Anything, badPhone).Return(nil, booking.ErrInvalidCustomerInfo)

	w := ts.do(http.MethodPost, "/public/appointments/create", "", ok)
	assert.Equal(t, http.StatusCreated, w.Code)
	appt := decode(t, w)["appointment"].(map[string]interface{})
	assert.Equal(t, "a1", appt["id"])
	assert.Equal(t, "booked", appt["status"])
	assert.Nil(t, appt["staffId"])

	w = ts.do(http.MethodPost, "/public/appointments/create", "", taken)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SlotNoLongerAvailable", decode(t, w)["code"])

	w = ts.do(http.MethodPost, "/public/appointments/create", "", badPhone)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "InvalidCustomerInfo", decode(t, w)["code"])
}

func TestGetAppointmentRoute(t *testing.T) {
	ts := newTestServer(t)
	ts.manager.On("Get", mock.Anything, "a1").Return(&models.AppointmentDetail{
		Appointment: models.Appointment{ID: "a1"},
		SalonName:   "Glow",
		Services:    []models.Service{{ID: "cut", Name: "Haircut"}},
	}, nil)
	ts.manager.On("Get", mock.Anything, "nope").Return(nil, booking.ErrAppointmentNotFound)

	w := ts.do(http.MethodGet, "/public/appointments/a1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	appt := decode(t, w)["appointment"].(map[string]interface{})
	assert.Equal(t, "Glow", appt["salonName"])

	w = ts.do(http.MethodGet, "/public/appointments/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOwnerRoutesRequireSession(t *testing.T) {
	ts := newTestServer(t)
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/appointments/all"},
		{http.MethodGet, "/hours/get"},
		{http.MethodPost, "/service/add"},
		{http.MethodDelete, "/staff/delete/x"},
		{http.MethodGet, "/auth/verify"},
		{http.MethodGet, "/salon/my-salon"},
	} {
		w := ts.do(tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, tc.path)

		w = ts.do(tc.method, tc.path, "expired", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, tc.path)
	}
}

func TestOwnerWithoutSalon(t *testing.T) {
	ts := newTestServer(t)
	input := models.SalonInput{Name: "Glow", Address: "1 Main St", City: "Pune"}
	ts.salons.On("CreateSalon", mock.Anything, "o2", input).Return(&models.Salon{ID: "s2", OwnerID: "o2", Name: "Glow"}, nil)

	w := ts.do(http.MethodGet, "/hours/get", "new-owner-token", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SalonRequired", decode(t, w)["code"])

	w = ts.do(http.MethodPost, "/salon/create", "new-owner-token", input)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestOwnerAppointmentRoutes(t *testing.T) {
	ts := newTestServer(t)
	ts.manager.On("ListAll", mock.Anything, "s1").Return([]models.Appointment{{ID: "a1"}, {ID: "a2"}}, nil)
	ts.manager.On("ListByDate", mock.Anything, "s1", "2030-01-07").Return([]models.Appointment{{ID: "a1"}}, nil)
	ts.manager.On("Cancel", mock.Anything, "s1", "a1").Return(&models.Appointment{ID: "a1", Status: models.StatusCancelled}, nil)
	ts.manager.On("UpdateStatus", mock.Anything, "s1", "a2", models.StatusConfirmed).Return(&models.Appointment{ID: "a2", Status: models.StatusConfirmed}, nil)
	ts.manager.On("UpdateStatus", mock.Anything, "s1", "a1", models.StatusComplete).Return(nil, booking.ErrInvalidTransition)
	ts.manager.On("Delete", mock.Anything, "s1", "a2").Return(nil)

	w := ts.do(http.MethodGet, "/appointments/all", "owner-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["appointments"], 2)

	w = ts.do(http.MethodGet, "/appointments/by-date?date=2030-01-07", "owner-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["appointments"], 1)

	w = ts.do(http.MethodPost, "/appointments/cancel/a1", "owner-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodPost, "/appointments/status/a2", "owner-token", gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodPost, "/appointments/status/a1", "owner-token", gin.H{"status": "complete"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodPost, "/appointments/status/a1", "owner-token", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodDelete, "/appointments/delete/a2", "owner-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOwnerCatalogRoutes(t *testing.T) {
	ts := newTestServer(t)
	week := []models.WorkingHours{{DayOfWeek: models.Monday, OpenTime: 9 * 60, CloseTime: 18 * 60}}
	svcInput := models.ServiceInput{Name: "Haircut", Price: 50000, Duration: 30}
	staffInput := models.StaffInput{Name: "Ravi", Role: "Stylist"}

	ts.salons.On("GetHours", mock.Anything, "s1").Return(week, nil)
	ts.salons.On("SetHours", mock.Anything, "s1", week).Return(week, nil)
	ts.salons.On("ListServices", mock.Anything, "s1").Return([]models.Service{{ID: "cut"}}, nil)
	ts.salons.On("AddService", mock.Anything, "s1", svcInput).Return(&models.Service{ID: "cut"}, nil)
	ts.salons.On("UpdateService", mock.Anything, "s1", "cut", svcInput).Return(&models.Service{ID: "cut"}, nil)
	ts.salons.On("DeleteService", mock.Anything, "s1", "cut").Return(nil)
	ts.salons.On("AddStaff", mock.Anything, "s1", staffInput).Return(&models.Staff{ID: "st1"}, nil)
	ts.salons.On("ListStaff", mock.Anything, "s1").Return([]models.Staff{{ID: "st1"}}, nil)

	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/hours/get", "owner-token", nil).Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodPost, "/hours/set", "owner-token", gin.H{"hours": week}).Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/service/all", "owner-token", nil).Code)
	assert.Equal(t, http.StatusCreated, ts.do(http.MethodPost, "/service/add", "owner-token", svcInput).Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodPut, "/service/update/cut", "owner-token", svcInput).Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodDelete, "/service/delete/cut", "owner-token", nil).Code)
	assert.Equal(t, http.StatusCreated, ts.do(http.MethodPost, "/staff/add", "owner-token", staffInput).Code)

	w := ts.do(http.MethodGet, "/staff/all", "owner-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["staff"], 1)

	// binding rejects a service shorter than five minutes before the service runs
	w = ts.do(http.MethodPost, "/service/add", "owner-token", models.ServiceInput{Name: "Quick", Duration: 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicSalonRoutes(t *testing.T) {
	ts := newTestServer(t)
	ts.salons.On("GetHours", mock.Anything, "s1").Return([]models.WorkingHours{}, nil)
	ts.salons.On("ListServices", mock.Anything, "s1").Return([]models.Service{{ID: "cut"}}, nil)
	ts.salons.On("GetSalon", mock.Anything, "s1").Return(&models.Salon{ID: "s1", Name: "Glow"}, nil)

	w := ts.do(http.MethodGet, "/public/working-hours/s1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hours":[]}`, w.Body.String())

	w = ts.do(http.MethodGet, "/public/services/s1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["services"], 1)

	w = ts.do(http.MethodGet, "/public/salon/s1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRoutes(t *testing.T) {
	ts := newTestServer(t)
	login := models.LoginRequest{Email: "a@example.com", Password: "secret-pass"}
	reg := models.RegisterOwnerRequest{Name: "A", Email: "a@example.com", Phone: "9876543210", Password: "secret-pass"}
	ts.owners.On("Register", mock.Anything, reg).Return(&models.Owner{ID: "o1", Email: reg.Email}, nil)
	ts.owners.On("Login", mock.Anything, login).Return("owner-token", &models.OwnerSession{OwnerID: "o1", SalonID: "s1"}, nil)
	ts.owners.On("Logout", mock.Anything, "owner-token").Return(nil)
	ts.salons.On("GetSalon", mock.Anything, "s1").Return(&models.Salon{ID: "s1", Name: "Glow"}, nil)

	w := ts.do(http.MethodPost, "/auth/register", "", reg)
	assert.Equal(t, http.StatusCreated, w.Code)

	bad := reg
	bad.Phone = "12ab"
	w = ts.do(http.MethodPost, "/auth/register", "", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodPost, "/auth/login", "", login)
	require.Equal(t, http.StatusOK, w.Code)
	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, "owner-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)

	w = ts.do(http.MethodGet, "/auth/verify", "owner-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"owner":{"ownerId":"o1","name":"","email":"","salonId":"s1"}}`, w.Body.String())

	w = ts.do(http.MethodGet, "/owner/profile", "owner-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Glow", decode(t, w)["salon"].(map[string]interface{})["name"])

	w = ts.do(http.MethodPost, "/auth/logout", "owner-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	ts.owners.AssertCalled(t, "Logout", mock.Anything, "owner-token")
}

func TestHealthAndMetrics(t *testing.T) {
	utils.RegisterMetrics()
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, false, decode(t, w)["healthy"])

	w = ts.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
