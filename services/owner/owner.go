package owner

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	ownerRepo "salonbook/database/repository/owner"
	salonRepo "salonbook/database/repository/salon"
	"salonbook/models"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultOwnerService) Register(ctx context.Context, req models.RegisterOwnerRequest) (*models.Owner, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)
	if name == "" || !strings.Contains(email, "@") || !utils.ValidPhone(phone) || len(req.Password) < 8 {
		return nil, ErrInvalidOwner
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ownerRepo.ErrNotFound) {
		return nil, utils.NewInternalError("failed to check email", err)
	}

	cost := s.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), cost)
	if err != nil {
		return nil, utils.NewInternalError("failed to hash password", err)
	}

	now := time.Now()
	owner := &models.Owner{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, owner); err != nil {
		if errors.Is(err, ownerRepo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, utils.NewInternalError("failed to create owner", err)
	}

	s.log().Info("owner registered", zap.String("ownerID", owner.ID))
	return owner, nil
}

// Login checks the password and starts a new session, replacing any
// previous one.
func (s *DefaultOwnerService) Login(ctx context.Context, req models.LoginRequest) (string, *models.OwnerSession, error) {
	owner, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, ownerRepo.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, utils.NewInternalError("failed to fetch owner", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.Signer.GenerateToken(owner.ID, owner.Email, s.sessionTTL())
	if err != nil {
		return "", nil, utils.NewInternalError("failed to sign token", err)
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, owner.ID, tokenHash); err != nil {
		return "", nil, utils.NewInternalError("failed to store session", err)
	}
	if owner.TokenHash != "" {
		s.uncache(ctx, owner.TokenHash)
	}

	session, err := s.sessionFor(ctx, owner)
	if err != nil {
		return "", nil, err
	}
	s.cache(ctx, tokenHash, *session)

	s.log().Info("owner logged in", zap.String("ownerID", owner.ID))
	return token, session, nil
}

// Verify resolves a session token to the owner identity. The Redis cache is
// consulted first; the stored token hash is the source of truth.
func (s *DefaultOwnerService) Verify(ctx context.Context, token string) (*models.OwnerSession, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	ownerID, err := s.Signer.ExtractIDFromToken(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	tokenHash := utils.HashToken(token)

	if session := s.cached(ctx, tokenHash); session != nil && session.OwnerID == ownerID {
		if session.SalonID == "" {
			s.attachSalon(ctx, session)
			if session.SalonID != "" {
				s.cache(ctx, tokenHash, *session)
			}
		}
		return session, nil
	}

	owner, err := s.Repo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, ownerRepo.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, utils.NewInternalError("failed to fetch owner", err)
	}
	if owner.TokenHash == "" || subtle.ConstantTimeCompare([]byte(owner.TokenHash), []byte(tokenHash)) != 1 {
		return nil, ErrUnauthorized
	}

	session, err := s.sessionFor(ctx, owner)
	if err != nil {
		return nil, err
	}
	s.cache(ctx, tokenHash, *session)
	return session, nil
}

// Logout ends the session the token belongs to.
func (s *DefaultOwnerService) Logout(ctx context.Context, token string) error {
	ownerID, err := s.Signer.ExtractIDFromToken(token)
	if err != nil {
		return ErrUnauthorized
	}
	tokenHash := utils.HashToken(token)
	s.uncache(ctx, tokenHash)

	owner, err := s.Repo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, ownerRepo.ErrNotFound) {
			return ErrUnauthorized
		}
		return utils.NewInternalError("failed to fetch owner", err)
	}
	// a newer login already replaced this session
	if owner.TokenHash != tokenHash {
		return nil
	}
	if err := s.Repo.SetTokenHash(ctx, ownerID, ""); err != nil {
		return utils.NewInternalError("failed to end session", err)
	}
	s.log().Info("owner logged out", zap.String("ownerID", ownerID))
	return nil
}

func (s *DefaultOwnerService) sessionFor(ctx context.Context, owner *models.Owner) (*models.OwnerSession, error) {
	session := &models.OwnerSession{OwnerID: owner.ID, Name: owner.Name, Email: owner.Email}
	if err := s.attachSalon(ctx, session); err != nil {
		return nil, utils.NewInternalError("failed to resolve salon", err)
	}
	return session, nil
}

func (s *DefaultOwnerService) attachSalon(ctx context.Context, session *models.OwnerSession) error {
	if s.Salons == nil {
		return nil
	}
	salon, err := s.Salons.GetByOwnerID(ctx, session.OwnerID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrNotFound) {
			return nil
		}
		return err
	}
	session.SalonID = salon.ID
	return nil
}

func (s *DefaultOwnerService) cached(ctx context.Context, tokenHash string) *models.OwnerSession {
	if s.Cache == nil {
		return nil
	}
	cctx, cancel := utils.WithCacheTimeout(ctx)
	defer cancel()
	session, err := utils.GetAuthSession(cctx, s.Cache, tokenHash)
	if err != nil {
		if !errors.Is(err, utils.ErrSessionNotCached) {
			s.log().Warn("auth cache read failed", zap.Error(err))
		}
		return nil
	}
	return session
}

func (s *DefaultOwnerService) cache(ctx context.Context, tokenHash string, session models.OwnerSession) {
	if s.Cache == nil {
		return
	}
	cctx, cancel := utils.WithCacheTimeout(ctx)
	defer cancel()
	if err := utils.SaveAuthSession(cctx, s.Cache, tokenHash, session); err != nil {
		s.log().Warn("auth cache write failed", zap.Error(err))
	}
}

func (s *DefaultOwnerService) uncache(ctx context.Context, tokenHash string) {
	if s.Cache == nil {
		return
	}
	cctx, cancel := utils.WithCacheTimeout(ctx)
	defer cancel()
	if err := utils.DeleteAuthSession(cctx, s.Cache, tokenHash); err != nil {
		s.log().Warn("auth cache delete failed", zap.Error(err))
	}
}

func (s *DefaultOwnerService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return 7 * 24 * time.Hour
}
