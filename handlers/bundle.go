package handlers

import (
	"salonbook/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Sessions      middleware.SessionVerifier
	SessionCookie string

	// Public booking flow
	AvailableSlots     gin.HandlerFunc
	CreateAppointment  gin.HandlerFunc
	GetAppointment     gin.HandlerFunc
	PublicSalon        gin.HandlerFunc
	PublicWorkingHours gin.HandlerFunc
	PublicServices     gin.HandlerFunc

	// Auth
	Register      gin.HandlerFunc
	Login         gin.HandlerFunc
	Logout        gin.HandlerFunc
	VerifySession gin.HandlerFunc
	OwnerProfile  gin.HandlerFunc

	// Salon profile
	MySalon     gin.HandlerFunc
	CreateSalon gin.HandlerFunc
	UpdateSalon gin.HandlerFunc

	// Owner dashboard
	GetHours                gin.HandlerFunc
	SetHours                gin.HandlerFunc
	ListServices            gin.HandlerFunc
	AddService              gin.HandlerFunc
	UpdateService           gin.HandlerFunc
	DeleteService           gin.HandlerFunc
	ListStaff               gin.HandlerFunc
	AddStaff                gin.HandlerFunc
	UpdateStaff             gin.HandlerFunc
	DeleteStaff             gin.HandlerFunc
	ListAppointments        gin.HandlerFunc
	ListAppointmentsByDate  gin.HandlerFunc
	CancelAppointment       gin.HandlerFunc
	UpdateAppointmentStatus gin.HandlerFunc
	DeleteAppointment       gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from the handler groups.
func NewHandlerBundle(sessions middleware.SessionVerifier, cookie string, avail *AvailabilityHandler, book *BookingHandler, salons *SalonHandler, auth *AuthHandler) *HandlerBundle {
	return &HandlerBundle{
		Sessions:      sessions,
		SessionCookie: cookie,

		AvailableSlots:     avail.AvailableSlots,
		CreateAppointment:  book.CreateAppointment,
		GetAppointment:     book.GetAppointment,
		PublicSalon:        salons.PublicSalon,
		PublicWorkingHours: salons.PublicWorkingHours,
		PublicServices:     salons.PublicServices,

		Register:      auth.Register,
		Login:         auth.Login,
		Logout:        auth.Logout,
		VerifySession: auth.Verify,
		OwnerProfile:  auth.Profile,

		MySalon:     salons.MySalon,
		CreateSalon: salons.CreateSalon,
		UpdateSalon: salons.UpdateSalon,

		GetHours:                salons.GetHours,
		SetHours:                salons.SetHours,
		ListServices:            salons.ListServices,
		AddService:              salons.AddService,
		UpdateService:           salons.UpdateService,
		DeleteService:           salons.DeleteService,
		ListStaff:               salons.ListStaff,
		AddStaff:                salons.AddStaff,
		UpdateStaff:             salons.UpdateStaff,
		DeleteStaff:             salons.DeleteStaff,
		ListAppointments:        book.ListAppointments,
		ListAppointmentsByDate:  book.ListAppointmentsByDate,
		CancelAppointment:       book.CancelAppointment,
		UpdateAppointmentStatus: book.UpdateAppointmentStatus,
		DeleteAppointment:       book.DeleteAppointment,
	}
}
