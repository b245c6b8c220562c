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

// CreateUser inserts a new account. Accounts start inactive until the
// registration OTP is verified.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, email, phone_number, password_hash, role, is_active, created_at, updated_at)
		VALUES (:id, :email, :phone_number, :password_hash, :role, :is_active, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID fetches a user by primary key.
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByEmail fetches a user by email.
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "user not found")
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// ActivateUser flips an account to active after OTP verification.
func (r *UserRepo) ActivateUser(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET is_active = true, updated_at = $2 WHERE id = $1`,
		id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to activate user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check activation result: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "user not found")
	}
	return nil
}

// RefreshRegistration overwrites the credentials, role and phone of an
// account that never finished verification. The is_active guard keeps a
// concurrently activated account from being rewritten.
func (r *UserRepo) RefreshRegistration(ctx context.Context, user *models.User) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE users SET password_hash = $2, role = $3, phone_number = $4, updated_at = $5
		WHERE id = $1 AND is_active = false`,
		user.ID, user.PasswordHash, user.Role, user.PhoneNumber, time.Now())
	if err != nil {
		return fmt.Errorf("failed to refresh registration: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check registration refresh: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindValidation, "email already registered")
	}
	return nil
}

// UpdatePassword replaces the password hash. The user row is locked for
// the duration of the transaction so concurrent resets serialize.
func (r *UserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var lockedID uuid.UUID
	err = tx.GetContext(ctx, &lockedID, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.New(apperrors.KindNotFound, "user not found")
		}
		return fmt.Errorf("failed to lock user row: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1`,
		id, passwordHash, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit password update: %w", err)
	}
	return nil
}
