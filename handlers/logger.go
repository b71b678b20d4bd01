package handlers

import (
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request logger set by middleware.RequestLogger,
// falling back to the process logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

func invalidRequest(err error) error {
	return utils.NewValidationError("InvalidRequest", "invalid request: "+err.Error())
}

// ownerSalonID returns the salon of the logged-in owner. Routes using it sit
// behind middleware.RequireSalon.
func ownerSalonID(c *gin.Context) string {
	if session, ok := utils.CurrentSession(c); ok {
		return session.SalonID
	}
	return ""
}
