package handlers

import (
	"errors"
	"net/http"
	"time"

	"salonbook/models"
	"salonbook/services/owner"
	"salonbook/services/salon"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves owner registration, login and the session endpoints.
type AuthHandler struct {
	Owners       owner.OwnerService
	Salons       salon.SalonService
	CookieName   string
	CookieSecure bool
	SessionTTL   time.Duration
}

func NewAuthHandler(owners owner.OwnerService, salons salon.SalonService, cookieName string, secure bool, ttl time.Duration) *AuthHandler {
	return &AuthHandler{Owners: owners, Salons: salons, CookieName: cookieName, CookieSecure: secure, SessionTTL: ttl}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, invalidRequest(err))
		return
	}
	o, err := h.Owners.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"owner": o})
}

// Login sets the session cookie and also returns the token for API clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, invalidRequest(err))
		return
	}
	token, session, err := h.Owners.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.CookieName, token, int(h.SessionTTL.Seconds()), "/", "", h.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"owner": session, "token": token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := utils.TokenFromRequest(c, h.CookieName)
	if token != "" {
		if err := h.Owners.Logout(c.Request.Context(), token); err != nil && !errors.Is(err, owner.ErrUnauthorized) {
			utils.RespondError(c, err)
			return
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.CookieName, "", -1, "/", "", h.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Verify handles GET /auth/verify behind the session middleware.
func (h *AuthHandler) Verify(c *gin.Context) {
	session, _ := utils.CurrentSession(c)
	c.JSON(http.StatusOK, gin.H{"owner": session})
}

// Profile handles GET /owner/profile: the session plus the owner's salon,
// which is null until one is created.
func (h *AuthHandler) Profile(c *gin.Context) {
	session, _ := utils.CurrentSession(c)

	var mySalon *models.Salon
	if session.SalonID != "" {
		s, err := h.Salons.GetSalon(c.Request.Context(), session.SalonID)
		switch {
		case err == nil:
			mySalon = s
		case errors.Is(err, salon.ErrSalonNotFound):
			getLogger(c).Warn("session salon missing", zap.String("salonID", session.SalonID))
		default:
			utils.RespondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"owner": session, "salon": mySalon})
}
