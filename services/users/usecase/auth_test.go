package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftload/swiftload/internal/pkg/apperrors"
	"github.com/swiftload/swiftload/internal/pkg/jwt"
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/internal/utils"
	"github.com/swiftload/swiftload/services/users/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:            "test-secret",
			AccessExpiration:  60,
			RefreshExpiration: 1440,
			ScopedExpiration:  5,
			Issuer:            "swiftload",
		},
		OTP: models.OTPConfig{
			TTLMinutes:  5,
			MaxAttempts: 5,
			CodeLength:  6,
		},
	}
}

func newTestUC(t *testing.T) (*UserUC, *mocks.MockUserRepo, *mocks.MockUserGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockUserRepo(ctrl)
	gw := mocks.NewMockUserGW(ctrl)
	return NewUserUC(testConfig(), repo, gw), repo, gw
}

func activeUser(role string) *models.User {
	hash, _ := utils.HashPassword("secret123")
	return &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
}

func TestRegister_RejectsMismatchedPasswords(t *testing.T) {
	uc, _, _ := newTestUC(t)

	err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:     "a@example.com",
		Role:      models.RoleCustomer,
		Password:  "secret123",
		Password2: "secret124",
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestRegister_RejectsInvalidRole(t *testing.T) {
	uc, _, _ := newTestUC(t)

	err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:     "a@example.com",
		Role:      models.RoleAdmin,
		Password:  "secret123",
		Password2: "secret123",
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestRegister_RejectsWeakPassword(t *testing.T) {
	uc, _, _ := newTestUC(t)

	err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:     "a@example.com",
		Role:      models.RoleCustomer,
		Password:  "short",
		Password2: "short",
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestRegister_RejectsActiveEmail(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "user@example.com").
		Return(activeUser(models.RoleCustomer), nil)

	err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:     "user@example.com",
		Role:      models.RoleCustomer,
		Password:  "secret123",
		Password2: "secret123",
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegister_CreatesUserAndQueuesCode(t *testing.T) {
	uc, repo, gw := newTestUC(t)

	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "new@example.com").
		Return(nil, apperrors.New(apperrors.KindNotFound, "user not found"))

	var created *models.User
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			created = u
			return nil
		})

	var stored *models.EmailOTP
	repo.EXPECT().
		ReplaceOTP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, otp *models.EmailOTP) error {
			stored = otp
			return nil
		})

	gw.EXPECT().
		PublishOTPEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.OTPEmailEvent) error {
			assert.Equal(t, "new@example.com", event.Email)
			assert.Equal(t, models.OTPPurposeRegistration, event.Purpose)
			assert.Len(t, event.Code, 6)
			return nil
		})

	err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:     "new@example.com",
		Role:      models.RoleDriver,
		Password:  "secret123",
		Password2: "secret123",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.False(t, created.IsActive)
	assert.Equal(t, models.RoleDriver, created.Role)
	require.NotNil(t, stored)
	assert.Equal(t, created.ID, stored.UserID)
	assert.Equal(t, 5, stored.MaxAttempts)
}

func TestRegister_ReissuesForUnverifiedAccount(t *testing.T) {
	uc, repo, gw := newTestUC(t)

	existing := activeUser(models.RoleCustomer)
	existing.IsActive = false

	repo.EXPECT().GetUserByEmail(gomock.Any(), existing.Email).Return(existing, nil)
	repo.EXPECT().RefreshRegistration(gomock.Any(), existing).Return(nil)
	repo.EXPECT().ReplaceOTP(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishOTPEmail(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:     existing.Email,
		Role:      models.RoleCustomer,
		Password:  "secret123",
		Password2: "secret123",
	})

	require.NoError(t, err)
}

func TestRegister_ReissueCorrectsRoleAndPhone(t *testing.T) {
	uc, repo, gw := newTestUC(t)

	existing := activeUser(models.RoleCustomer)
	existing.IsActive = false
	existing.PhoneNumber = "+233200000001"

	var refreshed *models.User
	repo.EXPECT().GetUserByEmail(gomock.Any(), existing.Email).Return(existing, nil)
	repo.EXPECT().
		RefreshRegistration(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			refreshed = u
			return nil
		})
	repo.EXPECT().ReplaceOTP(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishOTPEmail(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:     existing.Email,
		Phone:     "+233200000002",
		Role:      models.RoleDriver,
		Password:  "freshsecret1",
		Password2: "freshsecret1",
	})

	require.NoError(t, err)
	require.NotNil(t, refreshed)
	assert.Equal(t, models.RoleDriver, refreshed.Role)
	assert.Equal(t, "+233200000002", refreshed.PhoneNumber)
	assert.True(t, utils.CheckPassword(refreshed.PasswordHash, "freshsecret1"))
}

func TestVerifyRegistration_ActivatesAndIssuesScopedToken(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	user := activeUser(models.RoleCustomer)
	user.IsActive = false
	otp := &models.EmailOTP{
		ID:          uuid.New(),
		UserID:      user.ID,
		Code:        "123456",
		Purpose:     models.OTPPurposeRegistration,
		MaxAttempts: 5,
		CreatedAt:   time.Now(),
	}

	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	repo.EXPECT().GetActiveOTP(gomock.Any(), user.ID, models.OTPPurposeRegistration).Return(otp, nil)
	repo.EXPECT().MarkOTPVerified(gomock.Any(), otp.ID).Return(nil)
	repo.EXPECT().ActivateUser(gomock.Any(), user.ID).Return(nil)

	token, err := uc.VerifyRegistration(context.Background(), user.Email, "123456")
	require.NoError(t, err)

	userID, err := jwt.ValidateScopedToken(token, jwt.ScopeRegistration, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestVerifyRegistration_WrongCodeReportsAttemptsLeft(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	user := activeUser(models.RoleCustomer)
	otp := &models.EmailOTP{
		ID:          uuid.New(),
		UserID:      user.ID,
		Code:        "123456",
		Purpose:     models.OTPPurposeRegistration,
		MaxAttempts: 5,
		CreatedAt:   time.Now(),
	}

	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	repo.EXPECT().GetActiveOTP(gomock.Any(), user.ID, models.OTPPurposeRegistration).Return(otp, nil)
	repo.EXPECT().IncrementOTPAttempts(gomock.Any(), otp.ID).Return(1, nil)

	_, err := uc.VerifyRegistration(context.Background(), user.Email, "000000")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	assert.Contains(t, err.Error(), "4 attempts left")
}

func TestVerifyRegistration_LastAttemptLocks(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	user := activeUser(models.RoleCustomer)
	otp := &models.EmailOTP{
		ID:           uuid.New(),
		UserID:       user.ID,
		Code:         "123456",
		Purpose:      models.OTPPurposeRegistration,
		AttemptCount: 4,
		MaxAttempts:  5,
		CreatedAt:    time.Now(),
	}

	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	repo.EXPECT().GetActiveOTP(gomock.Any(), user.ID, models.OTPPurposeRegistration).Return(otp, nil)
	repo.EXPECT().IncrementOTPAttempts(gomock.Any(), otp.ID).Return(5, nil)

	_, err := uc.VerifyRegistration(context.Background(), user.Email, "000000")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindLocked))
}

func TestVerifyRegistration_LockedCodeRejectsEvenCorrectCode(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	user := activeUser(models.RoleCustomer)
	otp := &models.EmailOTP{
		ID:           uuid.New(),
		UserID:       user.ID,
		Code:         "123456",
		Purpose:      models.OTPPurposeRegistration,
		AttemptCount: 5,
		MaxAttempts:  5,
		CreatedAt:    time.Now(),
	}

	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	repo.EXPECT().GetActiveOTP(gomock.Any(), user.ID, models.OTPPurposeRegistration).Return(otp, nil)

	_, err := uc.VerifyRegistration(context.Background(), user.Email, "123456")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindLocked))
}

func TestVerifyRegistration_ExpiredCode(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	user := activeUser(models.RoleCustomer)
	otp := &models.EmailOTP{
		ID:          uuid.New(),
		UserID:      user.ID,
		Code:        "123456",
		Purpose:     models.OTPPurposeRegistration,
		MaxAttempts: 5,
		CreatedAt:   time.Now().Add(-10 * time.Minute),
	}

	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	repo.EXPECT().GetActiveOTP(gomock.Any(), user.ID, models.OTPPurposeRegistration).Return(otp, nil)

	_, err := uc.VerifyRegistration(context.Background(), user.Email, "123456")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindExpired))
}

func TestConfirmRegistration_RejectsWrongScope(t *testing.T) {
	uc, _, _ := newTestUC(t)

	resetToken, err := jwt.GenerateScopedToken(uuid.New(), jwt.ScopePasswordReset, testConfig().JWT)
	require.NoError(t, err)

	_, err = uc.ConfirmRegistration(context.Background(), resetToken)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestConfirmRegistration_IssuesTokenPair(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	user := activeUser(models.RoleCustomer)
	registerToken, err := jwt.GenerateScopedToken(user.ID, jwt.ScopeRegistration, testConfig().JWT)
	require.NoError(t, err)

	repo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)

	resp, err := uc.ConfirmRegistration(context.Background(), registerToken)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, user.Email, resp.User.Email)
	assert.NotEmpty(t, resp.Tokens.Access)
	assert.NotEmpty(t, resp.Tokens.Refresh)
}

func TestRequestPasswordReset_UnknownAddressIsSilent(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, apperrors.New(apperrors.KindNotFound, "user not found"))

	err := uc.RequestPasswordReset(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
}

func TestVerifyPasswordReset_UnknownAddressLooksLikeWrongCode(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, apperrors.New(apperrors.KindNotFound, "user not found"))

	_, err := uc.VerifyPasswordReset(context.Background(), "ghost@example.com", "123456")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	assert.NotContains(t, err.Error(), "not found")
}

func TestConfirmPasswordReset_UpdatesPassword(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	userID := uuid.New()
	resetToken, err := jwt.GenerateScopedToken(userID, jwt.ScopePasswordReset, testConfig().JWT)
	require.NoError(t, err)

	repo.EXPECT().
		UpdatePassword(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
			assert.True(t, utils.CheckPassword(hash, "newsecret1"))
			return nil
		})

	err = uc.ConfirmPasswordReset(context.Background(), resetToken, "newsecret1")
	assert.NoError(t, err)
}

func TestConfirmPasswordReset_RejectsAccessToken(t *testing.T) {
	uc, _, _ := newTestUC(t)

	pair, err := jwt.GenerateTokenPair(uuid.New(), "user@example.com", models.RoleCustomer, testConfig().JWT)
	require.NoError(t, err)

	err = uc.ConfirmPasswordReset(context.Background(), pair.Access, "newsecret1")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	user := activeUser(models.RoleCustomer)
	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    user.Email,
		Password: "wrongpass1",
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestLogin_InactiveAccount(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	user := activeUser(models.RoleCustomer)
	user.IsActive = false
	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))
}

func TestLogin_Succeeds(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	user := activeUser(models.RoleDriver)
	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})

	require.NoError(t, err)
	claims, err := jwt.ValidateToken(resp.Tokens.Access, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleDriver, claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestRefreshTokens_RejectsAccessToken(t *testing.T) {
	uc, _, _ := newTestUC(t)

	pair, err := jwt.GenerateTokenPair(uuid.New(), "user@example.com", models.RoleCustomer, testConfig().JWT)
	require.NoError(t, err)

	_, err = uc.RefreshTokens(context.Background(), pair.Access)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestRefreshTokens_IssuesFreshPair(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	user := activeUser(models.RoleCustomer)
	pair, err := jwt.GenerateTokenPair(user.ID, user.Email, user.Role, testConfig().JWT)
	require.NoError(t, err)

	repo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)

	fresh, err := uc.RefreshTokens(context.Background(), pair.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.Access)
	assert.NotEmpty(t, fresh.Refresh)
}
