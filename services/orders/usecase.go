package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftload/swiftload/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/swiftload/swiftload/services/orders OrderUC

// OrderUC defines the order usecase operations: order lifecycle, driver
// matching and package management.
type OrderUC interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *models.OrderCreateRequest) (*models.Order, error)
	AssignOrder(ctx context.Context, req *models.OrderAssignRequest) (*models.Order, error)
	CancelOrder(ctx context.Context, userID uuid.UUID, req *models.OrderCancelRequest) (*models.Order, error)

	CreatePackages(ctx context.Context, userID uuid.UUID, req *models.PackageCreateRequest) ([]*models.Package, error)
	UpdatePackage(ctx context.Context, userID uuid.UUID, req *models.PackageUpdateRequest) (*models.Package, error)
}
