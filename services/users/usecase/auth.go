package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/swiftload/swiftload/internal/pkg/apperrors"
	"github.com/swiftload/swiftload/internal/pkg/jwt"
	"github.com/swiftload/swiftload/internal/pkg/logger"
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/internal/utils"
)

// Register creates an inactive account and queues a registration code.
// Re-registering an address that never finished verification reissues
// the code instead of failing.
func (uc *UserUC) Register(ctx context.Context, req *models.RegisterRequest) error {
	if req.Role != models.RoleCustomer && req.Role != models.RoleDriver {
		return apperrors.New(apperrors.KindValidation, "role must be customer or driver")
	}
	if req.Password != req.Password2 {
		return apperrors.New(apperrors.KindValidation, "passwords do not match")
	}
	if err := utils.ValidatePasswordStrength(req.Password); err != nil {
		return apperrors.Wrap(apperrors.KindValidation, err.Error(), err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil && !apperrors.Is(err, apperrors.KindNotFound) {
		return err
	}

	if existing != nil {
		if existing.IsActive {
			return apperrors.New(apperrors.KindValidation, "email already registered")
		}
		// Unfinished registration: the resubmitted details win, so a
		// wrong first role or phone can still be corrected.
		existing.PasswordHash = hash
		existing.Role = req.Role
		existing.PhoneNumber = req.Phone
		if err := uc.userRepo.RefreshRegistration(ctx, existing); err != nil {
			return err
		}
		return uc.issueOTP(ctx, existing, models.OTPPurposeRegistration)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PhoneNumber:  req.Phone,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     false,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return err
	}

	logger.Info("Registered new account",
		logger.String("role", user.Role))
	return uc.issueOTP(ctx, user, models.OTPPurposeRegistration)
}

// VerifyRegistration checks the registration code, activates the
// account and returns a registration-scoped token.
func (uc *UserUC) VerifyRegistration(ctx context.Context, email, code string) (string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if err := uc.verifyOTP(ctx, user, models.OTPPurposeRegistration, code); err != nil {
		return "", err
	}

	if err := uc.userRepo.ActivateUser(ctx, user.ID); err != nil {
		return "", err
	}

	token, err := jwt.GenerateScopedToken(user.ID, jwt.ScopeRegistration, uc.cfg.JWT)
	if err != nil {
		return "", fmt.Errorf("failed to issue register token: %w", err)
	}
	return token, nil
}

// ConfirmRegistration exchanges a registration-scoped token for a full
// credential pair. Access and refresh tokens never pass this check.
func (uc *UserUC) ConfirmRegistration(ctx context.Context, registerToken string) (*models.AuthResponse, error) {
	userID, err := jwt.ValidateScopedToken(registerToken, jwt.ScopeRegistration, uc.cfg.JWT.Secret)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "invalid or expired register token", err)
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pair, err := jwt.GenerateTokenPair(user.ID, user.Email, user.Role, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return &models.AuthResponse{User: user, Tokens: *pair}, nil
}

// RequestPasswordReset queues a reset code when the address belongs to
// an account. Unknown addresses get the same success, so the endpoint
// cannot be used to probe for accounts.
func (uc *UserUC) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			logger.Info("Password reset requested for unknown address")
			return nil
		}
		return err
	}

	return uc.issueOTP(ctx, user, models.OTPPurposePasswordReset)
}

// VerifyPasswordReset checks the reset code and returns a reset-scoped
// token.
func (uc *UserUC) VerifyPasswordReset(ctx context.Context, email, code string) (string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			// Same shape as a wrong code for an existing account.
			return "", apperrors.New(apperrors.KindValidation, "invalid email or verification code")
		}
		return "", err
	}

	if err := uc.verifyOTP(ctx, user, models.OTPPurposePasswordReset, code); err != nil {
		return "", err
	}

	token, err := jwt.GenerateScopedToken(user.ID, jwt.ScopePasswordReset, uc.cfg.JWT)
	if err != nil {
		return "", fmt.Errorf("failed to issue reset token: %w", err)
	}
	return token, nil
}

// ConfirmPasswordReset sets a new password against a reset-scoped
// token.
func (uc *UserUC) ConfirmPasswordReset(ctx context.Context, resetToken, newPassword string) error {
	if err := utils.ValidatePasswordStrength(newPassword); err != nil {
		return apperrors.Wrap(apperrors.KindValidation, err.Error(), err)
	}

	userID, err := jwt.ValidateScopedToken(resetToken, jwt.ScopePasswordReset, uc.cfg.JWT.Secret)
	if err != nil {
		return apperrors.Wrap(apperrors.KindValidation, "invalid or expired reset token", err)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := uc.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	logger.Info("Password reset completed")
	return nil
}

// Login verifies credentials and issues a token pair.
func (uc *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, apperrors.New(apperrors.KindValidation, "invalid email or password")
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.New(apperrors.KindValidation, "invalid email or password")
	}
	if !user.IsActive {
		return nil, apperrors.New(apperrors.KindForbidden, "account is not verified")
	}

	pair, err := jwt.GenerateTokenPair(user.ID, user.Email, user.Role, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return &models.AuthResponse{User: user, Tokens: *pair}, nil
}

// RefreshTokens exchanges a refresh token for a fresh pair. The account
// is re-read so revoked or deleted users stop refreshing.
func (uc *UserUC) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	claims, err := jwt.ValidateToken(refreshToken, uc.cfg.JWT.Secret)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "invalid or expired refresh token", err)
	}

	tokenType, _ := claims["type"].(string)
	if tokenType != "refresh" {
		return nil, apperrors.New(apperrors.KindValidation, "token is not a refresh token")
	}

	userIDStr, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, apperrors.New(apperrors.KindValidation, "invalid refresh token")
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.New(apperrors.KindForbidden, "account is not verified")
	}

	return jwt.GenerateTokenPair(user.ID, user.Email, user.Role, uc.cfg.JWT)
}
