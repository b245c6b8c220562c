package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/swiftload/swiftload/internal/pkg/models"
)

// FindAvailableDriver returns the eligible driver with the lowest
// profile id, or nil when nobody qualifies. Eligible means available,
// complete, approved and not occupied by an active order.
func (r *OrderRepo) FindAvailableDriver(ctx context.Context) (*models.DriverProfile, error) {
	var profile models.DriverProfile
	err := r.db.GetContext(ctx, &profile, `
		SELECT dp.* FROM driver_profiles dp
		WHERE dp.is_available = true
		  AND dp.is_complete = true
		  AND dp.approval_status = $1
		  AND NOT EXISTS (
		      SELECT 1 FROM orders o
		      WHERE o.driver_id = dp.id AND o.order_status IN ($2, $3)
		  )
		ORDER BY dp.id ASC
		LIMIT 1`,
		models.ApprovalApproved, models.OrderStatusPending, models.OrderStatusAssigned)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find available driver: %w", err)
	}
	return &profile, nil
}

// CountActiveOrdersForDriver counts orders currently occupying the
// driver.
func (r *OrderRepo) CountActiveOrdersForDriver(ctx context.Context, driverID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM orders
		WHERE driver_id = $1 AND order_status IN ($2, $3)`,
		driverID, models.OrderStatusPending, models.OrderStatusAssigned)
	if err != nil {
		return 0, fmt.Errorf("failed to count active orders: %w", err)
	}
	return count, nil
}
