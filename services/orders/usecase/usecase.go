package usecase

import (
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/services/orders"
)

// OrderUC implements the order usecase operations.
type OrderUC struct {
	cfg       *models.Config
	orderRepo orders.OrderRepo
}

// NewOrderUC creates a new order usecase
func NewOrderUC(cfg *models.Config, orderRepo orders.OrderRepo) *OrderUC {
	return &OrderUC{
		cfg:       cfg,
		orderRepo: orderRepo,
	}
}
