package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nasheeman/portal/internal/app/models"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
	"github.com/nasheeman/portal/internal/pkg/auth"
	"github.com/nasheeman/portal/internal/pkg/dberrors"
	"github.com/nasheeman/portal/internal/pkg/logger"
	"github.com/nasheeman/portal/internal/pkg/mailer"
)

// resetTokenTTL is the lifetime of a password reset token.
const resetTokenTTL = time.Hour

// adminAccountStore is the admin account surface the auth service needs.
type adminAccountStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// guardianAccountStore is the guardian account surface the auth service needs.
type guardianAccountStore interface {
	Create(ctx context.Context, guardian *models.Guardian) error
	GetByEmail(ctx context.Context, email string) (*models.Guardian, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// resetTokenStore persists single-use password reset tokens.
type resetTokenStore interface {
	Create(ctx context.Context, token *models.PasswordResetToken) error
	GetByToken(ctx context.Context, value string) (*models.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id int64) error
}

// AuthService implements signup, login and the password reset flow for both
// account types.
type AuthService struct {
	adminRepo    adminAccountStore
	guardianRepo guardianAccountStore
	tokenRepo    resetTokenStore
	jwtService   *auth.JWTService
	mail         mailer.Mailer
	now          func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(
	adminRepo adminAccountStore,
	guardianRepo guardianAccountStore,
	tokenRepo resetTokenStore,
	jwtService *auth.JWTService,
	mail mailer.Mailer,
) *AuthService {
	return &AuthService{
		adminRepo:    adminRepo,
		guardianRepo: guardianRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
		mail:         mail,
		now:          time.Now,
	}
}

// Register creates a guardian account.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Guardian, error) {
	exists, err := s.guardianRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists,
			"An account with this email already exists.").WithField("email")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	guardian := &models.Guardian{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        optional(req.Phone),
		CNIC:         optional(req.CNIC),
	}

	if err := s.guardianRepo.Create(ctx, guardian); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists,
				"An account with this email already exists.").WithField("email")
		}
		return nil, err
	}

	logger.Info().Int64("guardian_id", guardian.ID).Str("email", guardian.Email).Msg("Guardian registered")
	return guardian, nil
}

// Login authenticates against the admin table first, then guardians, and
// issues a JWT for the matched identity.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		if auth.CheckPassword(admin.PasswordHash, req.Password) {
			return s.issueToken(auth.RoleAdmin, admin.Name, admin.Email, nil)
		}
		return nil, apperrors.ErrInvalidCredentials
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, err
	}

	guardian, err := s.guardianRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrGuardianNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(guardian.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(auth.RoleGuardian, guardian.FullName, guardian.Email, &guardian.ID)
}

func (s *AuthService) issueToken(role, name, email string, guardianID *int64) (*dto.LoginResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(role, name, email, guardianID)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("email", email).Str("role", role).Msg("Login succeeded")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      role,
		Name:      name,
		Email:     email,
	}, nil
}

// ForgotPassword issues a reset token when the email belongs to an account.
// The caller gets the same answer either way so the endpoint does not reveal
// which emails are registered.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	role, err := s.accountRole(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Info().Str("email", email).Msg("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	token := &models.PasswordResetToken{
		Token:     uuid.New().String(),
		Email:     email,
		Role:      role,
		ExpiresAt: s.now().Add(resetTokenTTL),
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return err
	}

	return s.mail.SendPasswordReset(email, token.Token)
}

// ResetPassword consumes a reset token and overwrites the account password.
func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	if req.Password != req.ConfirmPassword {
		return apperrors.NewValidationError("confirmPassword", "Passwords do not match.")
	}

	token, err := s.tokenRepo.GetByToken(ctx, req.Token)
	if err != nil {
		return err
	}

	if token.IsUsed() {
		return apperrors.ErrTokenUsed
	}
	if token.IsExpired(s.now()) {
		return apperrors.ErrTokenExpired
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	switch token.Role {
	case auth.RoleAdmin:
		err = s.adminRepo.UpdatePassword(ctx, token.Email, hash)
	case auth.RoleGuardian:
		err = s.guardianRepo.UpdatePassword(ctx, token.Email, hash)
	default:
		err = apperrors.ErrTokenInvalid
	}
	if err != nil {
		return err
	}

	if err := s.tokenRepo.MarkUsed(ctx, token.ID); err != nil {
		return err
	}

	logger.Info().Str("email", token.Email).Str("role", token.Role).Msg("Password reset completed")
	return nil
}

func (s *AuthService) accountRole(ctx context.Context, email string) (string, error) {
	if _, err := s.adminRepo.GetByEmail(ctx, email); err == nil {
		return auth.RoleAdmin, nil
	} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return "", err
	}

	if _, err := s.guardianRepo.GetByEmail(ctx, email); err == nil {
		return auth.RoleGuardian, nil
	} else if !errors.Is(err, apperrors.ErrGuardianNotFound) {
		return "", err
	}

	return "", apperrors.ErrResourceNotFound
}
