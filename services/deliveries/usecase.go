package deliveries

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftload/swiftload/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/swiftload/swiftload/services/deliveries DeliveryUC

// DeliveryUC defines the delivery usecase operations: bulk creation,
// lifecycle updates with their order and payment side effects, and
// payment lookups.
type DeliveryUC interface {
	CreateDeliveries(ctx context.Context, req *models.DeliveryCreateRequest) ([]*models.Delivery, error)
	UpdateDelivery(ctx context.Context, userID uuid.UUID, req *models.DeliveryUpdateRequest) (*models.Delivery, error)
	AssignRider(ctx context.Context, deliveryID string) (*models.Delivery, error)
	GetPayment(ctx context.Context, userID uuid.UUID, role, packageID string) (*models.Payment, error)
}
