package services

import (
	"context"
	"testing"
	"time"

	"github.com/nasheeman/portal/internal/app/models"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
	"github.com/nasheeman/portal/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminStore struct {
	admins    map[string]*models.Admin
	passwords map[string]string
}

func (f *fakeAdminStore) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if admin, ok := f.admins[email]; ok {
		return admin, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeAdminStore) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	admin, ok := f.admins[email]
	if !ok {
		return apperrors.ErrResourceNotFound
	}
	admin.PasswordHash = passwordHash
	if f.passwords == nil {
		f.passwords = map[string]string{}
	}
	f.passwords[email] = passwordHash
	return nil
}

type fakeGuardianAccountStore struct {
	guardians map[string]*models.Guardian
	passwords map[string]string
}

func (f *fakeGuardianAccountStore) Create(ctx context.Context, guardian *models.Guardian) error {
	if f.guardians == nil {
		f.guardians = map[string]*models.Guardian{}
	}
	guardian.ID = int64(len(f.guardians) + 1)
	f.guardians[guardian.Email] = guardian
	return nil
}

func (f *fakeGuardianAccountStore) GetByEmail(ctx context.Context, email string) (*models.Guardian, error) {
	if guardian, ok := f.guardians[email]; ok {
		return guardian, nil
	}
	return nil, apperrors.ErrGuardianNotFound
}

func (f *fakeGuardianAccountStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.guardians[email]
	return ok, nil
}

func (f *fakeGuardianAccountStore) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	guardian, ok := f.guardians[email]
	if !ok {
		return apperrors.ErrGuardianNotFound
	}
	guardian.PasswordHash = passwordHash
	if f.passwords == nil {
		f.passwords = map[string]string{}
	}
	f.passwords[email] = passwordHash
	return nil
}

type fakeResetTokenStore struct {
	tokens []*models.PasswordResetToken
}

func (f *fakeResetTokenStore) Create(ctx context.Context, token *models.PasswordResetToken) error {
	token.ID = int64(len(f.tokens) + 1)
	f.tokens = append(f.tokens, token)
	return nil
}

func (f *fakeResetTokenStore) GetByToken(ctx context.Context, value string) (*models.PasswordResetToken, error) {
	for _, t := range f.tokens {
		if t.Token == value {
			return t, nil
		}
	}
	return nil, apperrors.ErrTokenInvalid
}

func (f *fakeResetTokenStore) MarkUsed(ctx context.Context, id int64) error {
	for _, t := range f.tokens {
		if t.ID == id {
			if t.UsedAt != nil {
				return apperrors.ErrTokenUsed
			}
			now := time.Now()
			t.UsedAt = &now
			return nil
		}
	}
	return apperrors.ErrTokenUsed
}

type fakeMailer struct {
	sentTo     []string
	sentTokens []string
}

func (f *fakeMailer) SendPasswordReset(email, token string) error {
	f.sentTo = append(f.sentTo, email)
	f.sentTokens = append(f.sentTokens, token)
	return nil
}

type authFixture struct {
	svc       *AuthService
	admins    *fakeAdminStore
	guardians *fakeGuardianAccountStore
	tokens    *fakeResetTokenStore
	mail      *fakeMailer
}

func newTestAuthService(t *testing.T) *authFixture {
	t.Helper()

	adminHash, err := auth.HashPassword("admin-pass-123")
	require.NoError(t, err)
	guardianHash, err := auth.HashPassword("guardian-pass-123")
	require.NoError(t, err)

	fixture := &authFixture{
		admins: &fakeAdminStore{admins: map[string]*models.Admin{
			"admin@example.com": {ID: 1, Name: "Admin", Email: "admin@example.com", PasswordHash: adminHash},
			"both@example.com":  {ID: 2, Name: "Admin Twin", Email: "both@example.com", PasswordHash: adminHash},
		}},
		guardians: &fakeGuardianAccountStore{guardians: map[string]*models.Guardian{
			"sara@example.com": {ID: 1, FullName: "Sara", Email: "sara@example.com", PasswordHash: guardianHash},
			"both@example.com": {ID: 2, FullName: "Guardian Twin", Email: "both@example.com", PasswordHash: guardianHash},
		}},
		tokens: &fakeResetTokenStore{},
		mail:   &fakeMailer{},
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})

	fixture.svc = NewAuthService(fixture.admins, fixture.guardians, fixture.tokens, jwtService, fixture.mail)
	fixture.svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	}
	return fixture
}

func TestLoginChecksAdminTableFirst(t *testing.T) {
	f := newTestAuthService(t)

	// both@example.com exists as an admin and as a guardian. The admin
	// credentials win; the guardian password no longer signs that email in.
	resp, err := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "both@example.com",
		Password: "admin-pass-123",
	})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, resp.Role)
	assert.Equal(t, "Admin Twin", resp.Name)

	_, err = f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "both@example.com",
		Password: "guardian-pass-123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginGuardian(t *testing.T) {
	f := newTestAuthService(t)

	resp, err := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "sara@example.com",
		Password: "guardian-pass-123",
	})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleGuardian, resp.Role)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newTestAuthService(t)

	_, err := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	f := newTestAuthService(t)

	err := f.svc.ForgotPassword(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, f.tokens.tokens)
	assert.Empty(t, f.mail.sentTo)
}

func TestForgotPasswordIssuesToken(t *testing.T) {
	f := newTestAuthService(t)

	require.NoError(t, f.svc.ForgotPassword(context.Background(), "sara@example.com"))

	require.Len(t, f.tokens.tokens, 1)
	token := f.tokens.tokens[0]
	assert.Equal(t, "sara@example.com", token.Email)
	assert.Equal(t, auth.RoleGuardian, token.Role)
	assert.Equal(t, f.svc.now().Add(time.Hour), token.ExpiresAt)

	require.Len(t, f.mail.sentTokens, 1)
	assert.Equal(t, token.Token, f.mail.sentTokens[0])
}

func TestResetPasswordIsSingleUse(t *testing.T) {
	f := newTestAuthService(t)

	require.NoError(t, f.svc.ForgotPassword(context.Background(), "sara@example.com"))
	tokenValue := f.tokens.tokens[0].Token

	req := &dto.ResetPasswordRequest{
		Token:           tokenValue,
		Password:        "brand-new-pass",
		ConfirmPassword: "brand-new-pass",
	}
	require.NoError(t, f.svc.ResetPassword(context.Background(), req))

	hash := f.guardians.passwords["sara@example.com"]
	require.NotEmpty(t, hash)
	assert.True(t, auth.CheckPassword(hash, "brand-new-pass"))

	err := f.svc.ResetPassword(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrTokenUsed)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	f := newTestAuthService(t)

	require.NoError(t, f.svc.ForgotPassword(context.Background(), "sara@example.com"))
	tokenValue := f.tokens.tokens[0].Token

	issuedAt := f.svc.now()
	f.svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }

	err := f.svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:           tokenValue,
		Password:        "brand-new-pass",
		ConfirmPassword: "brand-new-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	assert.Empty(t, f.guardians.passwords)
}

func TestResetPasswordConfirmationMismatch(t *testing.T) {
	f := newTestAuthService(t)

	require.NoError(t, f.svc.ForgotPassword(context.Background(), "sara@example.com"))

	err := f.svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:           f.tokens.tokens[0].Token,
		Password:        "brand-new-pass",
		ConfirmPassword: "something-else",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "match")
	assert.Empty(t, f.guardians.passwords)
	assert.Nil(t, f.tokens.tokens[0].UsedAt)
}
