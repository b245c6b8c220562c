package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftload/swiftload/internal/pkg/apperrors"
	"github.com/swiftload/swiftload/internal/pkg/logger"
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/internal/utils"
)

// CreateDeliveries creates delivery records for packages of orders that
// already have a driver. Each delivery inherits the order's driver as
// its rider. A package can only ever have one delivery.
func (uc *DeliveryUC) CreateDeliveries(ctx context.Context, req *models.DeliveryCreateRequest) ([]*models.Delivery, error) {
	if len(req.Deliveries) == 0 {
		return nil, apperrors.New(apperrors.KindValidation, "deliveries must not be empty")
	}

	seen := make(map[string]bool, len(req.Deliveries))
	deliveries := make([]*models.Delivery, 0, len(req.Deliveries))

	for _, input := range req.Deliveries {
		if input.PackageID == "" || input.Address == "" {
			return nil, apperrors.New(apperrors.KindValidation, "package_id and address are required for every delivery")
		}
		if seen[input.PackageID] {
			return nil, apperrors.Newf(apperrors.KindInvalidState, "duplicate delivery for package %s", input.PackageID)
		}
		seen[input.PackageID] = true

		pkg, err := uc.deliveryRepo.GetPackageByID(ctx, input.PackageID)
		if err != nil {
			return nil, err
		}

		existing, err := uc.deliveryRepo.GetDeliveryByPackageID(ctx, pkg.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.Newf(apperrors.KindInvalidState, "package %s already has a delivery", pkg.ID)
		}

		order, err := uc.deliveryRepo.GetOrderByID(ctx, pkg.OrderID)
		if err != nil {
			return nil, err
		}
		if order.DriverID == nil {
			return nil, apperrors.Newf(apperrors.KindInvalidState, "order %s has no driver assigned", order.ID)
		}

		deliveries = append(deliveries, &models.Delivery{
			ID:        utils.GenerateDeliveryID(),
			PackageID: pkg.ID,
			Status:    models.DeliveryStatusAssigned,
			Address:   input.Address,
			RiderID:   order.DriverID,
		})
	}

	if err := uc.deliveryRepo.CreateDeliveries(ctx, deliveries); err != nil {
		return nil, err
	}

	logger.Info("Deliveries created",
		logger.Int("count", len(deliveries)))
	return deliveries, nil
}

// UpdateDelivery moves a delivery along its lifecycle on behalf of the
// assigned rider. Order and payment side effects land atomically with
// the status change.
func (uc *DeliveryUC) UpdateDelivery(ctx context.Context, userID uuid.UUID, req *models.DeliveryUpdateRequest) (*models.Delivery, error) {
	if !req.DeliveryStatus.Valid() {
		return nil, apperrors.Newf(apperrors.KindValidation, "unknown delivery status %q", req.DeliveryStatus)
	}

	rider, err := uc.deliveryRepo.GetDriverProfileByUserID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, apperrors.New(apperrors.KindForbidden, "caller has no driver profile")
		}
		return nil, err
	}

	delivery, err := uc.deliveryRepo.UpdateStatus(ctx, req.PackageID, rider.ID, req.DeliveryStatus, req.DeliveryNotes)
	if err != nil {
		return nil, err
	}

	logger.Info("Delivery updated",
		logger.String("delivery_id", delivery.ID),
		logger.String("status", string(delivery.Status)))
	return delivery, nil
}

// AssignRider binds the least loaded eligible rider to an unclaimed
// delivery.
func (uc *DeliveryUC) AssignRider(ctx context.Context, deliveryID string) (*models.Delivery, error) {
	delivery, err := uc.deliveryRepo.GetDeliveryByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if delivery.Status != models.DeliveryStatusAssigned {
		return nil, apperrors.New(apperrors.KindInvalidState, "delivery is already in progress")
	}

	rider, err := uc.deliveryRepo.FindLeastLoadedRider(ctx)
	if err != nil {
		return nil, err
	}
	if rider == nil {
		return nil, apperrors.New(apperrors.KindDriverUnavailable, "no eligible rider available")
	}

	if err := uc.deliveryRepo.AssignRider(ctx, delivery.ID, rider.ID); err != nil {
		return nil, err
	}

	delivery.RiderID = &rider.ID

	logger.Info("Rider assigned to delivery",
		logger.String("delivery_id", delivery.ID),
		logger.Int64("rider_id", rider.ID))
	return delivery, nil
}

// GetPayment returns the payment ledger row of a package. Customers
// only see payments of their own orders; the assigned rider sees the
// payments it collects; admins see everything.
func (uc *DeliveryUC) GetPayment(ctx context.Context, userID uuid.UUID, role, packageID string) (*models.Payment, error) {
	payment, err := uc.deliveryRepo.GetPaymentByPackageID(ctx, packageID)
	if err != nil {
		return nil, err
	}

	switch role {
	case models.RoleAdmin:
		return payment, nil

	case models.RoleCustomer:
		profile, err := uc.deliveryRepo.GetCustomerProfileByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		pkg, err := uc.deliveryRepo.GetPackageByID(ctx, packageID)
		if err != nil {
			return nil, err
		}
		order, err := uc.deliveryRepo.GetOrderByID(ctx, pkg.OrderID)
		if err != nil {
			return nil, err
		}
		if order.CustomerID != profile.ID {
			return nil, apperrors.New(apperrors.KindForbidden, "payment belongs to another customer")
		}
		return payment, nil

	case models.RoleDriver:
		rider, err := uc.deliveryRepo.GetDriverProfileByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		delivery, err := uc.deliveryRepo.GetDeliveryByPackageID(ctx, packageID)
		if err != nil {
			return nil, err
		}
		if delivery == nil || delivery.RiderID == nil || *delivery.RiderID != rider.ID {
			return nil, apperrors.New(apperrors.KindForbidden, "payment belongs to another rider's delivery")
		}
		return payment, nil

	default:
		return nil, apperrors.New(apperrors.KindForbidden, "role cannot view payments")
	}
}
