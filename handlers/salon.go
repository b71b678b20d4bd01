package handlers

import (
	"net/http"

	"salonbook/models"
	"salonbook/services/salon"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SalonHandler serves the salon profile, its weekly hours, the service menu
// and the team.
type SalonHandler struct {
	Salons salon.SalonService
}

func NewSalonHandler(salons salon.SalonService) *SalonHandler {
	return &SalonHandler{Salons: salons}
}

// Public endpoints.

func (h *SalonHandler) PublicSalon(c *gin.Context) {
	s, err := h.Salons.GetSalon(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"salon": s})
}

func (h *SalonHandler) PublicWorkingHours(c *gin.Context) {
	hours, err := h.Salons.GetHours(c.Request.Context(), c.Param("salonId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hours": hours})
}

func (h *SalonHandler) PublicServices(c *gin.Context) {
	services, err := h.Salons.ListServices(c.Request.Context(), c.Param("salonId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// Owner profile.

func (h *SalonHandler) MySalon(c *gin.Context) {
	session, _ := utils.CurrentSession(c)
	s, err := h.Salons.GetSalonByOwner(c.Request.Context(), session.OwnerID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"salon": s})
}

func (h *SalonHandler) CreateSalon(c *gin.Context) {
	session, _ := utils.CurrentSession(c)

	var input models.SalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, invalidRequest(err))
		return
	}
	s, err := h.Salons.CreateSalon(c.Request.Context(), session.OwnerID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("salon created", zap.String("salonID", s.ID), zap.String("ownerID", session.OwnerID))
	c.JSON(http.StatusCreated, gin.H{"salon": s})
}

func (h *SalonHandler) UpdateSalon(c *gin.Context) {
	var input models.SalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, invalidRequest(err))
		return
	}
	s, err := h.Salons.UpdateSalon(c.Request.Context(), ownerSalonID(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"salon": s})
}

// Working hours.

type setHoursRequest struct {
	Hours []models.WorkingHours `json:"hours" binding:"required"`
}

func (h *SalonHandler) GetHours(c *gin.Context) {
	hours, err := h.Salons.GetHours(c.Request.Context(), ownerSalonID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hours": hours})
}

func (h *SalonHandler) SetHours(c *gin.Context) {
	var req setHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, invalidRequest(err))
		return
	}
	hours, err := h.Salons.SetHours(c.Request.Context(), ownerSalonID(c), req.Hours)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hours": hours})
}

// Service menu.

func (h *SalonHandler) ListServices(c *gin.Context) {
	services, err := h.Salons.ListServices(c.Request.Context(), ownerSalonID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *SalonHandler) AddService(c *gin.Context) {
	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, invalidRequest(err))
		return
	}
	svc, err := h.Salons.AddService(c.Request.Context(), ownerSalonID(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

func (h *SalonHandler) UpdateService(c *gin.Context) {
	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, invalidRequest(err))
		return
	}
	svc, err := h.Salons.UpdateService(c.Request.Context(), ownerSalonID(c), c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

func (h *SalonHandler) DeleteService(c *gin.Context) {
	if err := h.Salons.DeleteService(c.Request.Context(), ownerSalonID(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

// Staff.

func (h *SalonHandler) ListStaff(c *gin.Context) {
	staff, err := h.Salons.ListStaff(c.Request.Context(), ownerSalonID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

func (h *SalonHandler) AddStaff(c *gin.Context) {
	var input models.StaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, invalidRequest(err))
		return
	}
	member, err := h.Salons.AddStaff(c.Request.Context(), ownerSalonID(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"staff": member})
}

func (h *SalonHandler) UpdateStaff(c *gin.Context) {
	var input models.StaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, invalidRequest(err))
		return
	}
	member, err := h.Salons.UpdateStaff(c.Request.Context(), ownerSalonID(c), c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": member})
}

func (h *SalonHandler) DeleteStaff(c *gin.Context) {
	if err := h.Salons.DeleteStaff(c.Request.Context(), ownerSalonID(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "staff member deleted"})
}
