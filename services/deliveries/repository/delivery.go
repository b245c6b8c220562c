package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/swiftload/swiftload/internal/pkg/apperrors"
	"github.com/swiftload/swiftload/internal/pkg/models"
)

// CreateDeliveries inserts the batch in one transaction so a partial
// batch never persists.
func (r *DeliveryRepo) CreateDeliveries(ctx context.Context, deliveries []*models.Delivery) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for _, delivery := range deliveries {
		delivery.AssignedAt = now
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO deliveries (id, package_id, delivery_status, address, delivery_notes, rider_id, assigned_at, picked_up_at, delivered_at)
			VALUES (:id, :package_id, :delivery_status, :address, :delivery_notes, :rider_id, :assigned_at, :picked_up_at, :delivered_at)`,
			delivery)
		if err != nil {
			return fmt.Errorf("failed to insert delivery: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit deliveries: %w", err)
	}
	return nil
}

// UpdateStatus moves a delivery along its lifecycle under a row lock.
// The first pickup flips the order into transit; the last hand-over
// completes the order, frees the driver and settles the payment, all in
// the same transaction.
func (r *DeliveryRepo) UpdateStatus(ctx context.Context, packageID string, riderID int64, next models.DeliveryStatus, notes string) (*models.Delivery, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var delivery models.Delivery
	err = tx.GetContext(ctx, &delivery,
		`SELECT * FROM deliveries WHERE package_id = $1 FOR UPDATE`, packageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindNotFound, "delivery not found")
		}
		return nil, fmt.Errorf("failed to lock delivery: %w", err)
	}

	if delivery.RiderID == nil || *delivery.RiderID != riderID {
		return nil, apperrors.New(apperrors.KindForbidden, "delivery is assigned to another rider")
	}
	if !delivery.Status.CanTransitionTo(next) {
		return nil, apperrors.Newf(apperrors.KindInvalidState, "delivery cannot move from %s to %s", delivery.Status, next)
	}

	now := time.Now()
	delivery.Status = next
	if notes != "" {
		delivery.Notes = notes
	}
	switch next {
	case models.DeliveryStatusPickedUp:
		delivery.PickedUpAt = &now
	case models.DeliveryStatusDelivered:
		delivery.DeliveredAt = &now
	}

	_, err = tx.NamedExecContext(ctx, `
		UPDATE deliveries
		SET delivery_status = :delivery_status,
		    delivery_notes = :delivery_notes,
		    picked_up_at = :picked_up_at,
		    delivered_at = :delivered_at
		WHERE id = :id`,
		&delivery)
	if err != nil {
		return nil, fmt.Errorf("failed to update delivery: %w", err)
	}

	var orderID string
	err = tx.GetContext(ctx, &orderID,
		`SELECT order_id FROM packages WHERE id = $1`, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve order: %w", err)
	}

	switch next {
	case models.DeliveryStatusPickedUp:
		// First pickup moves the order into transit; later pickups
		// match zero rows and are a no-op.
		_, err = tx.ExecContext(ctx, `
			UPDATE orders SET order_status = $2
			WHERE id = $1 AND order_status = $3`,
			orderID, models.OrderStatusInTransit, models.OrderStatusAssigned)
		if err != nil {
			return nil, fmt.Errorf("failed to move order into transit: %w", err)
		}

	case models.DeliveryStatusDelivered:
		_, err = tx.ExecContext(ctx, `
			UPDATE payments
			SET payment_status = $2, paid_at = $3, transaction_reference = $4
			WHERE package_id = $1 AND payment_status = $5`,
			packageID, models.PaymentStatusPaid, now, delivery.ID, models.PaymentStatusPending)
		if err != nil {
			return nil, fmt.Errorf("failed to settle payment: %w", err)
		}

		var open int
		err = tx.GetContext(ctx, &open, `
			SELECT COUNT(*) FROM deliveries d
			JOIN packages p ON p.id = d.package_id
			WHERE p.order_id = $1 AND d.delivery_status <> $2`,
			orderID, models.DeliveryStatusDelivered)
		if err != nil {
			return nil, fmt.Errorf("failed to count open deliveries: %w", err)
		}

		if open == 0 {
			_, err = tx.ExecContext(ctx,
				`UPDATE orders SET order_status = $2 WHERE id = $1`,
				orderID, models.OrderStatusDelivered)
			if err != nil {
				return nil, fmt.Errorf("failed to complete order: %w", err)
			}
			_, err = tx.ExecContext(ctx,
				`UPDATE driver_profiles SET is_available = true WHERE id = $1`,
				riderID)
			if err != nil {
				return nil, fmt.Errorf("failed to free driver: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit delivery update: %w", err)
	}
	return &delivery, nil
}

// FindLeastLoadedRider returns the eligible rider with the fewest open
// deliveries, ties broken by profile id.
func (r *DeliveryRepo) FindLeastLoadedRider(ctx context.Context) (*models.DriverProfile, error) {
	var profile models.DriverProfile
	err := r.db.GetContext(ctx, &profile, `
		SELECT dp.* FROM driver_profiles dp
		LEFT JOIN deliveries d ON d.rider_id = dp.id AND d.delivery_status <> $1
		WHERE dp.is_available = true
		  AND dp.is_complete = true
		  AND dp.approval_status = $2
		GROUP BY dp.id
		ORDER BY COUNT(d.id) ASC, dp.id ASC
		LIMIT 1`,
		models.DeliveryStatusDelivered, models.ApprovalApproved)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find least loaded rider: %w", err)
	}
	return &profile, nil
}

// AssignRider binds a rider to a delivery.
func (r *DeliveryRepo) AssignRider(ctx context.Context, deliveryID string, riderID int64) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE deliveries SET rider_id = $2
		WHERE id = $1 AND delivery_status = $3`,
		deliveryID, riderID, models.DeliveryStatusAssigned)
	if err != nil {
		return fmt.Errorf("failed to assign rider: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rider assignment: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindInvalidState, "delivery is already in progress")
	}
	return nil
}
