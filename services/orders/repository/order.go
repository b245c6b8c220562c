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

// GetCustomerProfileByUserID fetches the customer profile backing an
// authenticated account.
func (r *OrderRepo) GetCustomerProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.CustomerProfile, error) {
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

// GetDriverProfileByEmail fetches a driver profile through the account
// email.
func (r *OrderRepo) GetDriverProfileByEmail(ctx context.Context, email string) (*models.DriverProfile, error) {
	var profile models.DriverProfile
	err := r.db.GetContext(ctx, &profile, `
		SELECT dp.* FROM driver_profiles dp
		JOIN users u ON u.id = dp.user_id
		WHERE u.email = $1 AND u.role = $2`,
		email, models.RoleDriver)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "driver not found")
		}
		return nil, fmt.Errorf("failed to get driver by email: %w", err)
	}
	return &profile, nil
}

// CreateOrder inserts a new order.
func (r *OrderRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	order.CreatedAt = time.Now()
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO orders (id, customer_id, driver_id, pickup_address, total_price, order_status, cancel_reason, created_at)
		VALUES (:id, :customer_id, :driver_id, :pickup_address, :total_price, :order_status, :cancel_reason, :created_at)`,
		order)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetOrderByID fetches an order by its public id.
func (r *OrderRepo) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
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

// AssignDriver binds a driver to a pending order.
func (r *OrderRepo) AssignDriver(ctx context.Context, orderID string, driverID int64) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE orders SET driver_id = $2, order_status = $3
		WHERE id = $1 AND order_status = $4`,
		orderID, driverID, models.OrderStatusAssigned, models.OrderStatusPending)
	if err != nil {
		return fmt.Errorf("failed to assign driver: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check assignment result: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindInvalidState, "order is not pending")
	}
	return nil
}

// CancelOrder flips an order to cancelled under a row lock. Ownership
// and lifecycle checks run inside the same transaction so a concurrent
// status change cannot slip through.
func (r *OrderRepo) CancelOrder(ctx context.Context, orderID string, customerID int64, reason string) (*models.Order, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var order models.Order
	err = tx.GetContext(ctx, &order, `SELECT * FROM orders WHERE id = $1 FOR UPDATE`, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "order not found")
		}
		return nil, fmt.Errorf("failed to lock order: %w", err)
	}

	if order.CustomerID != customerID {
		return nil, apperrors.New(apperrors.KindForbidden, "order belongs to another customer")
	}
	if !order.Status.Active() {
		return nil, apperrors.Newf(apperrors.KindInvalidState, "order in status %s cannot be cancelled", order.Status)
	}

	// An assigned order whose packages already changed hands must not
	// be cancelled out from under the receiver.
	var handled int
	err = tx.GetContext(ctx, &handled, `
		SELECT COUNT(*) FROM deliveries d
		JOIN packages p ON p.id = d.package_id
		WHERE p.order_id = $1 AND d.delivery_status <> $2`,
		orderID, models.DeliveryStatusAssigned)
	if err != nil {
		return nil, fmt.Errorf("failed to check deliveries: %w", err)
	}
	if handled > 0 {
		return nil, apperrors.New(apperrors.KindInvalidState, "order has packages already picked up or delivered")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE orders SET order_status = $2, cancel_reason = $3 WHERE id = $1`,
		orderID, models.OrderStatusCancelled, reason)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	order.Status = models.OrderStatusCancelled
	order.CancelReason = &reason
	return &order, nil
}
