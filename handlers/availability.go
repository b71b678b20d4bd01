package handlers

import (
	"net/http"

	"salonbook/models"
	"salonbook/services/availability"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	Slots availability.SlotService
}

func NewAvailabilityHandler(slots availability.SlotService) *AvailabilityHandler {
	return &AvailabilityHandler{Slots: slots}
}

// AvailableSlots handles POST /slots/available.
func (h *AvailabilityHandler) AvailableSlots(c *gin.Context) {
	logger := getLogger(c)

	var req models.AvailableSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, invalidRequest(err))
		return
	}

	slots, err := h.Slots.AvailableSlots(c.Request.Context(), req.SalonID, req.Date, req.Duration)
	if err != nil {
		logger.Debug("availability query failed",
			zap.String("salonID", req.SalonID),
			zap.String("date", req.Date),
			zap.Error(err),
		)
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
