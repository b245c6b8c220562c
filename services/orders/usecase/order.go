package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftload/swiftload/internal/pkg/apperrors"
	"github.com/swiftload/swiftload/internal/pkg/logger"
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/internal/utils"
)

// CreateOrder places an order for the calling customer and tries to
// match a driver right away. With no eligible driver the order stays
// pending for a later admin assignment.
func (uc *OrderUC) CreateOrder(ctx context.Context, userID uuid.UUID, req *models.OrderCreateRequest) (*models.Order, error) {
	if req.PickupAddress == "" {
		return nil, apperrors.New(apperrors.KindValidation, "pickup_address is required")
	}

	profile, err := uc.orderRepo.GetCustomerProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.IsComplete {
		return nil, apperrors.New(apperrors.KindValidation, "complete your profile before placing orders")
	}

	order := &models.Order{
		ID:            utils.GenerateOrderID(),
		CustomerID:    profile.ID,
		PickupAddress: req.PickupAddress,
		Status:        models.OrderStatusPending,
	}

	driver, err := uc.orderRepo.FindAvailableDriver(ctx)
	if err != nil {
		return nil, err
	}
	if driver != nil {
		order.DriverID = &driver.ID
		order.Status = models.OrderStatusAssigned
	}

	if err := uc.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("Order created",
		logger.String("order_id", order.ID),
		logger.String("status", string(order.Status)))
	return order, nil
}

// AssignOrder is the admin path binding a named driver to a pending
// order. The driver must pass the same eligibility bar as automatic
// matching.
func (uc *OrderUC) AssignOrder(ctx context.Context, req *models.OrderAssignRequest) (*models.Order, error) {
	order, err := uc.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return nil, apperrors.Newf(apperrors.KindInvalidState, "order in status %s cannot be assigned", order.Status)
	}

	driver, err := uc.orderRepo.GetDriverProfileByEmail(ctx, req.DriverEmail)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, apperrors.New(apperrors.KindDriverUnavailable, "driver not found")
		}
		return nil, err
	}

	if !driver.IsAvailable || !driver.IsComplete || driver.ApprovalStatus != models.ApprovalApproved {
		return nil, apperrors.New(apperrors.KindDriverUnavailable, "driver is not eligible for assignment")
	}
	active, err := uc.orderRepo.CountActiveOrdersForDriver(ctx, driver.ID)
	if err != nil {
		return nil, err
	}
	if active > 0 {
		return nil, apperrors.New(apperrors.KindDriverUnavailable, "driver already has an active order")
	}

	if err := uc.orderRepo.AssignDriver(ctx, order.ID, driver.ID); err != nil {
		return nil, err
	}

	order.DriverID = &driver.ID
	order.Status = models.OrderStatusAssigned

	logger.Info("Order assigned",
		logger.String("order_id", order.ID),
		logger.Int64("driver_id", driver.ID))
	return order, nil
}

// CancelOrder lets the owning customer cancel an order that has not
// moved into transit.
func (uc *OrderUC) CancelOrder(ctx context.Context, userID uuid.UUID, req *models.OrderCancelRequest) (*models.Order, error) {
	profile, err := uc.orderRepo.GetCustomerProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	order, err := uc.orderRepo.CancelOrder(ctx, req.OrderID, profile.ID, req.CancelReason)
	if err != nil {
		return nil, err
	}

	logger.Info("Order cancelled",
		logger.String("order_id", order.ID))
	return order, nil
}
