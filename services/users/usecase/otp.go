package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swiftload/swiftload/internal/pkg/apperrors"
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/internal/utils"
)

// issueOTP generates a fresh code for the user and purpose, supersedes
// any earlier unverified code and queues the email.
func (uc *UserUC) issueOTP(ctx context.Context, user *models.User, purpose string) error {
	code, err := utils.GenerateOTPCode(uc.cfg.OTP.CodeLength)
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	otp := &models.EmailOTP{
		ID:          uuid.New(),
		UserID:      user.ID,
		Code:        code,
		Purpose:     purpose,
		MaxAttempts: uc.cfg.OTP.MaxAttempts,
	}
	if err := uc.userRepo.ReplaceOTP(ctx, otp); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	event := &models.OTPEmailEvent{
		Email:    user.Email,
		Code:     code,
		Purpose:  purpose,
		IssuedAt: time.Now(),
	}
	if err := uc.userGW.PublishOTPEmail(ctx, event); err != nil {
		return fmt.Errorf("failed to queue OTP email: %w", err)
	}
	return nil
}

// verifyOTP checks the submitted code against the live one for the user
// and purpose. Locked and expired codes fail closed; a mismatch burns
// one attempt and reports how many are left.
func (uc *UserUC) verifyOTP(ctx context.Context, user *models.User, purpose, code string) error {
	otp, err := uc.userRepo.GetActiveOTP(ctx, user.ID, purpose)
	if err != nil {
		return err
	}

	if otp.IsLocked() {
		return apperrors.New(apperrors.KindLocked, "maximum verification attempts exceeded, request a new code")
	}

	ttl := time.Duration(uc.cfg.OTP.TTLMinutes) * time.Minute
	if otp.IsExpired(ttl, time.Now()) {
		return apperrors.New(apperrors.KindExpired, "verification code expired, request a new code")
	}

	if otp.Code != code {
		count, err := uc.userRepo.IncrementOTPAttempts(ctx, otp.ID)
		if err != nil {
			return fmt.Errorf("failed to record failed attempt: %w", err)
		}

		left := otp.MaxAttempts - count
		if left <= 0 {
			return apperrors.New(apperrors.KindLocked, "maximum verification attempts exceeded, request a new code")
		}
		return apperrors.Newf(apperrors.KindValidation, "invalid verification code, %d attempts left", left)
	}

	if err := uc.userRepo.MarkOTPVerified(ctx, otp.ID); err != nil {
		return fmt.Errorf("failed to consume OTP: %w", err)
	}
	return nil
}
