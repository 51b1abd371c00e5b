package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/account"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("auth_usecase")

type AuthUseCase struct {
	accountRepo account.Repository
	jwtSvc      *auth.JWTService
	sessions    service.SessionStore
	logger      logger.Logger
}

func NewAuthUseCase(
	repo account.Repository,
	jwtSvc *auth.JWTService,
	sessions service.SessionStore,
	log logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		accountRepo: repo,
		jwtSvc:      jwtSvc,
		sessions:    sessions,
		logger:      log,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	AccessToken string
	Account     *account.Account
}

func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {

	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	a, err := uc.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		// Do not leak whether the username exists.
		return nil, apperror.NewUnauthorized("Invalid username or password", err)
	}

	if !auth.CheckPasswordHash(input.Password, a.PasswordHash) {
		err := apperror.NewUnauthorized("Invalid username or password", nil)
		span.RecordError(err)
		return nil, err
	}

	if !a.IsActive {
		return nil, apperror.NewUnauthorized("Account is deactivated", nil)
	}

	token, err := uc.jwtSvc.GenerateToken(a.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("account_id", a.ID.String()))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}

	now := time.Now().UTC()
	if err := uc.accountRepo.UpdateLastLogin(ctx, a.ID, now); err != nil {
		// Login still succeeds: last-login is bookkeeping.
		uc.logger.Warn("Failed to update last login", zap.String("account_id", a.ID.String()), zap.Error(err))
	}
	a.LastLoginAt = &now

	span.SetAttributes(attribute.String("account_id", a.ID.String()))
	return &LoginOutput{AccessToken: token, Account: a}, nil
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type RegisterOutput struct {
	AccessToken string
	Account     *account.Account
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	now := time.Now().UTC()
	a := &account.Account{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         account.RoleMember,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.accountRepo.Save(ctx, a); err != nil {
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(a.ID)
	if err != nil {
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	return &RegisterOutput{AccessToken: token, Account: a}, nil
}

// Logout denylists the presented token until its natural expiry.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	claims, err := uc.jwtSvc.ValidateToken(token)
	if err != nil {
		// Expired or invalid tokens need no revocation.
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := uc.sessions.Revoke(ctx, token, ttl); err != nil {
		return apperror.NewInternal("failed to revoke token", err)
	}
	return nil
}
