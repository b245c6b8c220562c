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

// CreatePackages inserts the packages with their pending payment rows
// and bumps the order total, all in one transaction.
func (r *OrderRepo) CreatePackages(ctx context.Context, orderID string, packages []*models.Package, payments []*models.Payment, total float64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for _, pkg := range packages {
		pkg.CreatedAt = now
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO packages (id, order_id, description, dimensions, value, fragile, receiver_name, receiver_phone, created_at)
			VALUES (:id, :order_id, :description, :dimensions, :value, :fragile, :receiver_name, :receiver_phone, :created_at)`,
			pkg)
		if err != nil {
			return fmt.Errorf("failed to insert package: %w", err)
		}
	}

	for _, payment := range payments {
		payment.CreatedAt = now
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO payments (id, package_id, amount, payment_method, payment_status, transaction_reference, paid_at, created_at)
			VALUES (:id, :package_id, :amount, :payment_method, :payment_status, :transaction_reference, :paid_at, :created_at)`,
			payment)
		if err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET total_price = total_price + $2 WHERE id = $1`,
		orderID, total)
	if err != nil {
		return fmt.Errorf("failed to update order total: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit packages: %w", err)
	}
	return nil
}

// GetPackageByID fetches a package by its public id.
func (r *OrderRepo) GetPackageByID(ctx context.Context, id string) (*models.Package, error) {
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

// UpdatePackageReceiver updates the receiver contact fields.
func (r *OrderRepo) UpdatePackageReceiver(ctx context.Context, packageID, receiverName, receiverPhone string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE packages SET receiver_name = $2, receiver_phone = $3 WHERE id = $1`,
		packageID, receiverName, receiverPhone)
	if err != nil {
		return fmt.Errorf("failed to update package receiver: %w", err)
	}
	return nil
}
