package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swiftload/swiftload/internal/pkg/models"
)

// GetOrCreateCustomerProfile fetches the customer profile, creating an
// empty one on first access.
func (r *UserRepo) GetOrCreateCustomerProfile(ctx context.Context, userID uuid.UUID) (*models.CustomerProfile, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customer_profiles (user_id, customer_name, address, is_complete, updated_at)
		VALUES ($1, '', '', false, $2)
		ON CONFLICT (user_id) DO NOTHING`,
		userID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to ensure customer profile: %w", err)
	}

	var profile models.CustomerProfile
	err = r.db.GetContext(ctx, &profile,
		`SELECT * FROM customer_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer profile: %w", err)
	}
	return &profile, nil
}

// UpdateCustomerProfile persists profile fields and the completeness
// flag.
func (r *UserRepo) UpdateCustomerProfile(ctx context.Context, profile *models.CustomerProfile) error {
	profile.UpdatedAt = time.Now()
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE customer_profiles
		SET customer_name = :customer_name,
		    address = :address,
		    is_complete = :is_complete,
		    updated_at = :updated_at
		WHERE id = :id`,
		profile)
	if err != nil {
		return fmt.Errorf("failed to update customer profile: %w", err)
	}
	return nil
}

// GetOrCreateDriverProfile fetches the driver profile, creating an
// empty pending one on first access.
func (r *UserRepo) GetOrCreateDriverProfile(ctx context.Context, userID uuid.UUID) (*models.DriverProfile, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO driver_profiles (user_id, vehicle_type, vehicle_number, license_number,
		                             is_available, is_complete, approval_status, updated_at)
		VALUES ($1, '', '', '', true, false, $2, $3)
		ON CONFLICT (user_id) DO NOTHING`,
		userID, models.ApprovalPending, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to ensure driver profile: %w", err)
	}

	var profile models.DriverProfile
	err = r.db.GetContext(ctx, &profile,
		`SELECT * FROM driver_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver profile: %w", err)
	}
	return &profile, nil
}

// UpdateDriverProfile persists vehicle fields and the completeness
// flag.
func (r *UserRepo) UpdateDriverProfile(ctx context.Context, profile *models.DriverProfile) error {
	profile.UpdatedAt = time.Now()
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE driver_profiles
		SET vehicle_type = :vehicle_type,
		    vehicle_number = :vehicle_number,
		    license_number = :license_number,
		    is_available = :is_available,
		    is_complete = :is_complete,
		    updated_at = :updated_at
		WHERE id = :id`,
		profile)
	if err != nil {
		return fmt.Errorf("failed to update driver profile: %w", err)
	}
	return nil
}

// UpdateDriverApproval records the admin decision on an application.
func (r *UserRepo) UpdateDriverApproval(ctx context.Context, profileID int64, status string, reason *string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE driver_profiles
		SET approval_status = $2, rejection_reason = $3, updated_at = $4
		WHERE id = $1`,
		profileID, status, reason, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update driver approval: %w", err)
	}
	return nil
}
