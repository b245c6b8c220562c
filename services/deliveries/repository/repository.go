package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/swiftload/swiftload/internal/pkg/apperrors"
	"github.com/swiftload/swiftload/internal/pkg/models"
)

// DeliveryRepo handles delivery and payment persistence on Postgres.
type DeliveryRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDeliveryRepo creates a new delivery repository
func NewDeliveryRepo(cfg *models.Config, db *sqlx.DB) *DeliveryRepo {
	return &DeliveryRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetPackageByID fetches a package by its public id.
func (r *DeliveryRepo) GetPackageByID(ctx context.Context, id string) (*models.Package, error) {
	var pkg models.Package
	err := r.db.GetContext(ctx, &pkg, `SELECT * FROM packages WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "package not found")
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return &pkg, nil
}

// GetOrderByID fetches an order by its public id.
func (r *DeliveryRepo) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.GetContext(ctx, &order, `SELECT * FROM orders WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "order not found")
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// GetDeliveryByID fetches a delivery by its public id.
func (r *DeliveryRepo) GetDeliveryByID(ctx context.Context, id string) (*models.Delivery, error) {
	var delivery models.Delivery
	err := r.db.GetContext(ctx, &delivery, `SELECT * FROM deliveries WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "delivery not found")
		}
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	return &delivery, nil
}

// GetDeliveryByPackageID fetches the delivery tracking a package, or
// nil when the package has none yet.
func (r *DeliveryRepo) GetDeliveryByPackageID(ctx context.Context, packageID string) (*models.Delivery, error) {
	var delivery models.Delivery
	err := r.db.GetContext(ctx, &delivery, `SELECT * FROM deliveries WHERE package_id = $1`, packageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get delivery by package: %w", err)
	}
	return &delivery, nil
}

// GetDriverProfileByUserID fetches the driver profile backing an
// authenticated account.
func (r *DeliveryRepo) GetDriverProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.DriverProfile, error) {
	var profile models.DriverProfile
	err := r.db.GetContext(ctx, &profile,
		`SELECT * FROM driver_profiles WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "driver profile not found")
		}
		return nil, fmt.Errorf("failed to get driver profile: %w", err)
	}
	return &profile, nil
}

// GetCustomerProfileByUserID fetches the customer profile backing an
// authenticated account.
func (r *DeliveryRepo) GetCustomerProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.CustomerProfile, error) {
	var profile models.CustomerProfile
	err := r.db.GetContext(ctx, &profile,
		`SELECT * FROM customer_profiles WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "customer profile not found")
		}
		return nil, fmt.Errorf("failed to get customer profile: %w", err)
	}
	return &profile, nil
}

// GetPaymentByPackageID fetches the payment ledger row of a package.
func (r *DeliveryRepo) GetPaymentByPackageID(ctx context.Context, packageID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.GetContext(ctx, &payment,
		`SELECT * FROM payments WHERE package_id = $1`, packageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "payment not found")
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}
