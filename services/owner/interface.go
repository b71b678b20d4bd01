package owner

import (
	"context"
	"time"

	ownerRepo "salonbook/database/repository/owner"
	"salonbook/models"
	"salonbook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// OwnerService handles owner accounts and their login sessions. An owner
// has at most one active session; logging in again ends the previous one.
type OwnerService interface {
	Register(ctx context.Context, req models.RegisterOwnerRequest) (*models.Owner, error)
	Login(ctx context.Context, req models.LoginRequest) (string, *models.OwnerSession, error)
	Verify(ctx context.Context, token string) (*models.OwnerSession, error)
	Logout(ctx context.Context, token string) error
}

// SalonFinder resolves the salon an owner runs.
type SalonFinder interface {
	GetByOwnerID(ctx context.Context, ownerID string) (*models.Salon, error)
}

type DefaultOwnerService struct {
	Repo       ownerRepo.OwnerRepository
	Salons     SalonFinder
	Signer     *utils.TokenSigner
	Cache      *redis.Client // optional session cache
	SessionTTL time.Duration
	HashCost   int
	Logger     *zap.Logger
}

var (
	ErrUnauthorized       = &utils.AppError{Kind: utils.KindAuth, Code: "Unauthorized", Message: "please log in to continue"}
	ErrInvalidCredentials = &utils.AppError{Kind: utils.KindAuth, Code: "InvalidCredentials", Message: "invalid email or password"}
	ErrEmailTaken         = utils.NewConflictError("EmailTaken", "an account with this email already exists")
	ErrInvalidOwner       = utils.NewValidationError("InvalidOwner", "name, a valid email, a 10 digit phone and a password of at least 8 characters are required")
)

func (s *DefaultOwnerService) log() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
