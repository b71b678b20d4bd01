// File: utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"salonbook/models"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// ErrSessionNotCached is returned when no cached session exists for a token.
var ErrSessionNotCached = errors.New("session not cached")

// SaveAuthSession caches the verified owner session under the token hash.
func SaveAuthSession(ctx context.Context, client *redis.Client, tokenHash string, session models.OwnerSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	if err := client.Set(ctx, AuthCacheKey(tokenHash), data, AuthCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession reads a cached session and slides its expiry.
func GetAuthSession(ctx context.Context, client *redis.Client, tokenHash string) (*models.OwnerSession, error) {
	key := AuthCacheKey(tokenHash)
	data, err := client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotCached
		}
		return nil, err
	}
	var session models.OwnerSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	client.Expire(ctx, key, AuthCacheTTL)
	return &session, nil
}

// DeleteAuthSession removes a cached session.
func DeleteAuthSession(ctx context.Context, client *redis.Client, tokenHash string) error {
	return client.Del(ctx, AuthCacheKey(tokenHash)).Err()
}

// sessionCacheTimeout bounds each cache call so a slow Redis degrades to
// the database path instead of stalling requests.
const sessionCacheTimeout = 500 * time.Millisecond

// WithCacheTimeout derives a short-lived context for cache calls.
func WithCacheTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, sessionCacheTimeout)
}

// TokenFromRequest reads the session token from the cookie, falling back to
// an Authorization bearer header.
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// CurrentSession returns the session attached by the auth middleware.
func CurrentSession(c *gin.Context) (*models.OwnerSession, bool) {
	v, ok := c.Get(SessionContextKey)
	if !ok {
		return nil, false
	}
	session, ok := v.(*models.OwnerSession)
	return session, ok && session != nil
}
