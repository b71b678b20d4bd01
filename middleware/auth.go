// middleware/auth.go
package middleware

import (
	"context"

	"salonbook/models"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
)

// SessionVerifier resolves a session token to an owner.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*models.OwnerSession, error)
}

var (
	ErrNotLoggedIn   = utils.NewAuthError("please log in to continue")
	ErrSalonRequired = utils.NewNotFoundError("SalonRequired", "create your salon first")
)

// SessionAuth verifies the session cookie (or bearer token) once per request
// and stores the owner session in the context under utils.SessionContextKey.
func SessionAuth(verifier SessionVerifier, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.TokenFromRequest(c, cookieName)
		if token == "" {
			utils.RespondError(c, ErrNotLoggedIn)
			return
		}

		session, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		c.Set(utils.SessionContextKey, session)
		c.Next()
	}
}

// RequireSalon rejects owners who have not created their salon yet. It must
// run after SessionAuth.
func RequireSalon() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := utils.CurrentSession(c)
		if !ok {
			utils.RespondError(c, ErrNotLoggedIn)
			return
		}
		if session.SalonID == "" {
			utils.RespondError(c, ErrSalonRequired)
			return
		}
		c.Next()
	}
}
