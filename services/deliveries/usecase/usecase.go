package usecase

import (
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/services/deliveries"
)

// DeliveryUC implements the delivery usecase operations.
type DeliveryUC struct {
	cfg          *models.Config
	deliveryRepo deliveries.DeliveryRepo
}

// NewDeliveryUC creates a new delivery usecase
func NewDeliveryUC(cfg *models.Config, deliveryRepo deliveries.DeliveryRepo) *DeliveryUC {
	return &DeliveryUC{
		cfg:          cfg,
		deliveryRepo: deliveryRepo,
	}
}
