package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swiftload/swiftload/internal/pkg/apperrors"
	"github.com/swiftload/swiftload/internal/pkg/models"
)

// ReplaceOTP deletes any unverified codes for the same user and purpose
// and inserts the new one in a single transaction, so at most one code
// is live per flow.
func (r *UserRepo) ReplaceOTP(ctx context.Context, otp *models.EmailOTP) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM email_otps WHERE user_id = $1 AND purpose = $2 AND is_verified = false`,
		otp.UserID, otp.Purpose)
	if err != nil {
		return fmt.Errorf("failed to supersede previous codes: %w", err)
	}

	otp.CreatedAt = time.Now()
	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO email_otps (id, user_id, code, purpose, is_verified, attempt_count, max_attempts, created_at)
		VALUES (:id, :user_id, :code, :purpose, :is_verified, :attempt_count, :max_attempts, :created_at)`,
		otp)
	if err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit OTP replacement: %w", err)
	}
	return nil
}

// GetActiveOTP returns the newest unverified code for the user and
// purpose.
func (r *UserRepo) GetActiveOTP(ctx context.Context, userID uuid.UUID, purpose string) (*models.EmailOTP, error) {
	var otp models.EmailOTP
	err := r.db.GetContext(ctx, &otp, `
		SELECT * FROM email_otps
		WHERE user_id = $1 AND purpose = $2 AND is_verified = false
		ORDER BY created_at DESC
		LIMIT 1`,
		userID, purpose)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "no active verification code")
		}
		return nil, fmt.Errorf("failed to get active OTP: %w", err)
	}
	return &otp, nil
}

// IncrementOTPAttempts bumps the mismatch counter and returns the new
// count.
func (r *UserRepo) IncrementOTPAttempts(ctx context.Context, otpID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`UPDATE email_otps SET attempt_count = attempt_count + 1 WHERE id = $1 RETURNING attempt_count`,
		otpID)
	if err != nil {
		return 0, fmt.Errorf("failed to increment OTP attempts: %w", err)
	}
	return count, nil
}

// MarkOTPVerified consumes a code so it cannot be replayed.
func (r *UserRepo) MarkOTPVerified(ctx context.Context, otpID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE email_otps SET is_verified = true WHERE id = $1`, otpID)
	if err != nil {
		return fmt.Errorf("failed to mark OTP verified: %w", err)
	}
	return nil
}
