package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"salonbook/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	SetLogger(zap.NewNop())
	gin.SetMode(gin.TestMode)
}

func TestAppErrorIsMatchesCode(t *testing.T) {
	sentinel := NewConflictError("SlotNoLongerAvailable", "gone")
	refined := sentinel.WithMessage("slot %s is gone", "10:00")

	assert.ErrorIs(t, refined, sentinel)
	assert.Equal(t, "slot 10:00 is gone", refined.Message)
	assert.Equal(t, "gone", sentinel.Message)

	wrapped := errors.Join(errors.New("context"), refined)
	assert.ErrorIs(t, wrapped, sentinel)
	assert.NotErrorIs(t, NewConflictError("Other", "gone"), sentinel)
}

func TestAppErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("V", "").Status())
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("N", "").Status())
	assert.Equal(t, http.StatusConflict, NewConflictError("C", "").Status())
	assert.Equal(t, http.StatusUnauthorized, NewAuthError("").Status())
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("", nil).Status())
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"conflict", NewConflictError("SlotNoLongerAvailable", "slot taken"), http.StatusConflict, `{"error":"slot taken","code":"SlotNoLongerAvailable","message":"slot taken"}`},
		{"internal is generic", NewInternalError("mongo exploded", errors.New("boom")), http.StatusInternalServerError, `{"error":"internal server error"}`},
		{"plain error is generic", errors.New("driver detail"), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondError(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTokenSigner(t *testing.T) {
	_, err := NewTokenSigner("")
	assert.Error(t, err)

	signer, err := NewTokenSigner("secret")
	require.NoError(t, err)

	token, err := signer.GenerateToken("owner-1", "a@b.com", time.Hour)
	require.NoError(t, err)
	id, err := signer.ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", id)

	other, _ := NewTokenSigner("other")
	_, err = other.ExtractIDFromToken(token)
	assert.Error(t, err)

	expired, err := signer.GenerateToken("owner-1", "a@b.com", -time.Minute)
	require.NoError(t, err)
	_, err = signer.ExtractIDFromToken(expired)
	assert.Error(t, err)

	assert.Len(t, HashToken(token), 64)
	assert.Equal(t, HashToken(token), HashToken(token))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("9876543210"))
	for _, bad := range []string{"", "987654321", "98765432100", "98765-4321", "98765o4321"} {
		assert.False(t, ValidPhone(bad), bad)
	}
}

func TestRegisterBindingValidations(t *testing.T) {
	require.NoError(t, RegisterBindingValidations())

	type body struct {
		Phone string `json:"phone" binding:"required,phone10"`
	}
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var b body
		if err := c.ShouldBindJSON(&b); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	for payload, want := range map[string]int{
		`{"phone":"9876543210"}`: http.StatusOK,
		`{"phone":"12345"}`:      http.StatusBadRequest,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, payload)
	}
}

func TestAuthSessionCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	ctx := context.Background()

	_, err := GetAuthSession(ctx, client, "hash")
	assert.ErrorIs(t, err, ErrSessionNotCached)

	session := models.OwnerSession{OwnerID: "o1", Email: "a@b.com", SalonID: "s1"}
	require.NoError(t, SaveAuthSession(ctx, client, "hash", session))
	assert.Equal(t, AuthCacheTTL, mr.TTL("auth:hash"))

	mr.FastForward(AuthCacheTTL - time.Minute)
	got, err := GetAuthSession(ctx, client, "hash")
	require.NoError(t, err)
	assert.Equal(t, session, *got)
	assert.Equal(t, AuthCacheTTL, mr.TTL("auth:hash"))

	require.NoError(t, DeleteAuthSession(ctx, client, "hash"))
	assert.False(t, mr.Exists("auth:hash"))
}
