package deliveries

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftload/swiftload/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/swiftload/swiftload/services/deliveries DeliveryRepo

// DeliveryRepo defines the persistence operations of the deliveries
// service.
type DeliveryRepo interface {
	GetPackageByID(ctx context.Context, id string) (*models.Package, error)
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	GetDeliveryByID(ctx context.Context, id string) (*models.Delivery, error)
	GetDeliveryByPackageID(ctx context.Context, packageID string) (*models.Delivery, error)
	CreateDeliveries(ctx context.Context, deliveries []*models.Delivery) error

	GetDriverProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.DriverProfile, error)
	GetCustomerProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.CustomerProfile, error)

	// UpdateStatus moves a delivery along its lifecycle under a row
	// lock, applying the order and payment side effects in the same
	// transaction.
	UpdateStatus(ctx context.Context, packageID string, riderID int64, next models.DeliveryStatus, notes string) (*models.Delivery, error)

	// FindLeastLoadedRider returns the eligible rider carrying the
	// fewest open deliveries, or nil when nobody qualifies.
	FindLeastLoadedRider(ctx context.Context) (*models.DriverProfile, error)
	AssignRider(ctx context.Context, deliveryID string, riderID int64) error

	GetPaymentByPackageID(ctx context.Context, packageID string) (*models.Payment, error)
}
