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

func newTestRepo(t *testing.T) (*OrderRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewOrderRepo(&models.Config{}, sqlxDB), mock
}

func orderRows(customerID int64, status models.OrderStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "customer_id", "driver_id", "pickup_address", "total_price",
		"order_status", "cancel_reason", "created_at",
	}).AddRow("ORD11111111", customerID, nil, "12 Quay Lane", 0.0, status, nil, time.Now())
}

func TestCancelOrder_Success(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM orders WHERE id = \$1 FOR UPDATE`).
		WithArgs("ORD11111111").
		WillReturnRows(orderRows(7, models.OrderStatusPending))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM deliveries d`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`UPDATE orders SET order_status = \$2, cancel_reason = \$3 WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	order, err := repo.CancelOrder(context.Background(), "ORD11111111", 7, "changed plans")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)
	require.NotNil(t, order.CancelReason)
	assert.Equal(t, "changed plans", *order.CancelReason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelOrder_RejectsForeignCustomer(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM orders WHERE id = \$1 FOR UPDATE`).
		WithArgs("ORD11111111").
		WillReturnRows(orderRows(7, models.OrderStatusPending))
	mock.ExpectRollback()

	_, err := repo.CancelOrder(context.Background(), "ORD11111111", 9, "")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelOrder_RejectsHandledPackages(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM orders WHERE id = \$1 FOR UPDATE`).
		WithArgs("ORD11111111").
		WillReturnRows(orderRows(7, models.OrderStatusAssigned))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM deliveries d`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := repo.CancelOrder(context.Background(), "ORD11111111", 7, "")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidState))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelOrder_RejectsClosedOrder(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM orders WHERE id = \$1 FOR UPDATE`).
		WithArgs("ORD11111111").
		WillReturnRows(orderRows(7, models.OrderStatusDelivered))
	mock.ExpectRollback()

	_, err := repo.CancelOrder(context.Background(), "ORD11111111", 7, "")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidState))
}

func TestAssignDriver_RejectsNonPendingOrder(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(`UPDATE orders SET driver_id = \$2, order_status = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AssignDriver(context.Background(), "ORD11111111", 4)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidState))
}

func TestFindAvailableDriver_NilWhenNobodyEligible(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT dp\.\* FROM driver_profiles dp`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	profile, err := repo.FindAvailableDriver(context.Background())
	require.NoError(t, err)
	assert.Nil(t, profile)
}
