package handlers

import (
	"net/http"

	"salonbook/models"
	"salonbook/services/booking"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Creator booking.AppointmentCreator
	Manager booking.AppointmentManager
}

func NewBookingHandler(creator booking.AppointmentCreator, manager booking.AppointmentManager) *BookingHandler {
	return &BookingHandler{Creator: creator, Manager: manager}
}

// CreateAppointment handles POST /public/appointments/create.
func (h *BookingHandler) CreateAppointment(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, invalidRequest(err))
		return
	}

	appt, err := h.Creator.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": appt})
}

// GetAppointment handles GET /public/appointments/:id.
func (h *BookingHandler) GetAppointment(c *gin.Context) {
	detail, err := h.Manager.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": detail})
}

func (h *BookingHandler) ListAppointments(c *gin.Context) {
	appts, err := h.Manager.ListAll(c.Request.Context(), ownerSalonID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListAppointmentsByDate handles GET /appointments/by-date?date=YYYY-MM-DD.
func (h *BookingHandler) ListAppointmentsByDate(c *gin.Context) {
	appts, err := h.Manager.ListByDate(c.Request.Context(), ownerSalonID(c), c.Query("date"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *BookingHandler) CancelAppointment(c *gin.Context) {
	salonID, id := ownerSalonID(c), c.Param("id")
	appt, err := h.Manager.Cancel(c.Request.Context(), salonID, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("appointment cancelled by owner", zap.String("salonID", salonID), zap.String("appointmentID", id))
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

type statusUpdateRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required"`
}

// UpdateAppointmentStatus handles POST /appointments/status/:id.
func (h *BookingHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, invalidRequest(err))
		return
	}

	appt, err := h.Manager.UpdateStatus(c.Request.Context(), ownerSalonID(c), c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

func (h *BookingHandler) DeleteAppointment(c *gin.Context) {
	if err := h.Manager.Delete(c.Request.Context(), ownerSalonID(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment deleted"})
}
