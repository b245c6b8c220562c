package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftload/swiftload/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/swiftload/swiftload/services/orders OrderRepo

// OrderRepo defines the persistence operations of the orders service.
type OrderRepo interface {
	GetCustomerProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.CustomerProfile, error)
	GetDriverProfileByEmail(ctx context.Context, email string) (*models.DriverProfile, error)

	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	AssignDriver(ctx context.Context, orderID string, driverID int64) error
	// CancelOrder locks the order row, verifies ownership and state and
	// flips it to cancelled in one transaction.
	CancelOrder(ctx context.Context, orderID string, customerID int64, reason string) (*models.Order, error)

	// FindAvailableDriver returns the matching candidate with the lowest
	// profile id, or nil when nobody is eligible.
	FindAvailableDriver(ctx context.Context) (*models.DriverProfile, error)
	CountActiveOrdersForDriver(ctx context.Context, driverID int64) (int, error)

	// CreatePackages inserts packages with their pending payments and
	// bumps the order total in one transaction.
	CreatePackages(ctx context.Context, orderID string, packages []*models.Package, payments []*models.Payment, total float64) error
	GetPackageByID(ctx context.Context, id string) (*models.Package, error)
	UpdatePackageReceiver(ctx context.Context, packageID, receiverName, receiverPhone string) error
}
