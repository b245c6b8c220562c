package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftload/swiftload/internal/pkg/apperrors"
	"github.com/swiftload/swiftload/internal/pkg/models"
)

func newTestRepo(t *testing.T) (*DeliveryRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewDeliveryRepo(&models.Config{}, sqlxDB), mock
}

func deliveryRows(status models.DeliveryStatus, riderID int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "package_id", "delivery_status", "address", "delivery_notes",
		"rider_id", "assigned_at", "picked_up_at", "delivered_at",
	}).AddRow("DEL11111111", "PKG11111111", status, "5 Harbour Rd", "", riderID, time.Now(), nil, nil)
}

func TestUpdateStatus_PickupMovesOrderIntoTransit(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM deliveries WHERE package_id = \$1 FOR UPDATE`).
		WithArgs("PKG11111111").
		WillReturnRows(deliveryRows(models.DeliveryStatusAssigned, 4))
	mock.ExpectExec(`UPDATE deliveries`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT order_id FROM packages WHERE id = \$1`).
		WithArgs("PKG11111111").
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow("ORD11111111"))
	mock.ExpectExec(`UPDATE orders SET order_status = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	delivery, err := repo.UpdateStatus(context.Background(), "PKG11111111", 4, models.DeliveryStatusPickedUp, "")
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusPickedUp, delivery.Status)
	assert.NotNil(t, delivery.PickedUpAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_FinalDeliveryCompletesOrderAndSettlesPayment(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM deliveries WHERE package_id = \$1 FOR UPDATE`).
		WithArgs("PKG11111111").
		WillReturnRows(deliveryRows(models.DeliveryStatusPickedUp, 4))
	mock.ExpectExec(`UPDATE deliveries`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT order_id FROM packages WHERE id = \$1`).
		WithArgs("PKG11111111").
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow("ORD11111111"))
	mock.ExpectExec(`UPDATE payments`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM deliveries d`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`UPDATE orders SET order_status = \$2 WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE driver_profiles SET is_available = true`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	delivery, err := repo.UpdateStatus(context.Background(), "PKG11111111", 4, models.DeliveryStatusDelivered, "left with guard")
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusDelivered, delivery.Status)
	assert.NotNil(t, delivery.DeliveredAt)
	assert.Equal(t, "left with guard", delivery.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NonFinalDeliveryLeavesOrderOpen(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM deliveries WHERE package_id = \$1 FOR UPDATE`).
		WithArgs("PKG11111111").
		WillReturnRows(deliveryRows(models.DeliveryStatusPickedUp, 4))
	mock.ExpectExec(`UPDATE deliveries`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT order_id FROM packages WHERE id = \$1`).
		WithArgs("PKG11111111").
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow("ORD11111111"))
	mock.ExpectExec(`UPDATE payments`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM deliveries d`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectCommit()

	_, err := repo.UpdateStatus(context.Background(), "PKG11111111", 4, models.DeliveryStatusDelivered, "")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindLeastLoadedRider_RequiresAvailability(t *testing.T) {
	repo, mock := newTestRepo(t)

	// Only available, complete, approved riders qualify; an unavailable
	// rider must never be picked no matter how idle.
	mock.ExpectQuery(`SELECT dp\.\* FROM driver_profiles dp\s+LEFT JOIN deliveries d ON d\.rider_id = dp\.id AND d\.delivery_status <> \$1\s+WHERE dp\.is_available = true\s+AND dp\.is_complete = true\s+AND dp\.approval_status = \$2`).
		WithArgs(models.DeliveryStatusDelivered, models.ApprovalApproved).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rider, err := repo.FindLeastLoadedRider(context.Background())
	require.NoError(t, err)
	assert.Nil(t, rider)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_RejectsForeignRider(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM deliveries WHERE package_id = \$1 FOR UPDATE`).
		WithArgs("PKG11111111").
		WillReturnRows(deliveryRows(models.DeliveryStatusAssigned, 4))
	mock.ExpectRollback()

	_, err := repo.UpdateStatus(context.Background(), "PKG11111111", 9, models.DeliveryStatusPickedUp, "")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_RejectsIllegalTransition(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM deliveries WHERE package_id = \$1 FOR UPDATE`).
		WithArgs("PKG11111111").
		WillReturnRows(deliveryRows(models.DeliveryStatusAssigned, 4))
	mock.ExpectRollback()

	_, err := repo.UpdateStatus(context.Background(), "PKG11111111", 4, models.DeliveryStatusDelivered, "")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidState))
	assert.NoError(t, mock.ExpectationsWereMet())
}
