package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftload/swiftload/internal/pkg/apperrors"
	"github.com/swiftload/swiftload/internal/pkg/logger"
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/internal/utils"
)

// CreatePackages adds packages to the caller's order. Each package gets
// a pending payment row; everything lands in one transaction so a
// partial batch never persists.
func (uc *OrderUC) CreatePackages(ctx context.Context, userID uuid.UUID, req *models.PackageCreateRequest) ([]*models.Package, error) {
	if len(req.Packages) == 0 {
		return nil, apperrors.New(apperrors.KindValidation, "packages must not be empty")
	}

	profile, err := uc.orderRepo.GetCustomerProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	order, err := uc.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != profile.ID {
		return nil, apperrors.New(apperrors.KindForbidden, "order belongs to another customer")
	}
	if !order.Status.Active() {
		return nil, apperrors.Newf(apperrors.KindInvalidState, "packages cannot be added to a %s order", order.Status)
	}

	packages := make([]*models.Package, 0, len(req.Packages))
	payments := make([]*models.Payment, 0, len(req.Packages))
	var total float64

	for _, input := range req.Packages {
		if input.ReceiverName == "" || input.ReceiverPhone == "" {
			return nil, apperrors.New(apperrors.KindValidation, "receiver_name and receiver_phone are required for every package")
		}
		if input.Description == "" {
			return nil, apperrors.New(apperrors.KindValidation, "description is required for every package")
		}

		method := input.PaymentMethod
		if method == "" {
			method = models.PaymentMethodCash
		}
		if method != models.PaymentMethodCash && method != models.PaymentMethodMobileMoney {
			return nil, apperrors.Newf(apperrors.KindValidation, "unsupported payment method %q", input.PaymentMethod)
		}

		amount := input.Amount
		if amount <= 0 {
			amount = input.Value
		}

		pkg := &models.Package{
			ID:            utils.GeneratePackageID(),
			OrderID:       order.ID,
			Description:   input.Description,
			Dimensions:    input.Dimensions,
			Value:         input.Value,
			Fragile:       input.Fragile,
			ReceiverName:  input.ReceiverName,
			ReceiverPhone: input.ReceiverPhone,
		}
		packages = append(packages, pkg)

		payments = append(payments, &models.Payment{
			ID:        utils.GenerateTransactionID(),
			PackageID: pkg.ID,
			Amount:    amount,
			Method:    method,
			Status:    models.PaymentStatusPending,
		})
		total += amount
	}

	if err := uc.orderRepo.CreatePackages(ctx, order.ID, packages, payments, total); err != nil {
		return nil, err
	}

	logger.Info("Packages added",
		logger.String("order_id", order.ID),
		logger.Int("count", len(packages)))
	return packages, nil
}

// UpdatePackage updates receiver details on a package of the caller's
// order. Receiver edits stop once the order is out of its active
// states.
func (uc *OrderUC) UpdatePackage(ctx context.Context, userID uuid.UUID, req *models.PackageUpdateRequest) (*models.Package, error) {
	if req.ReceiverName == "" || req.ReceiverPhone == "" {
		return nil, apperrors.New(apperrors.KindValidation, "receiver_name and receiver_phone are required")
	}

	profile, err := uc.orderRepo.GetCustomerProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pkg, err := uc.orderRepo.GetPackageByID(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}

	order, err := uc.orderRepo.GetOrderByID(ctx, pkg.OrderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != profile.ID {
		return nil, apperrors.New(apperrors.KindForbidden, "package belongs to another customer")
	}
	if order.Status == models.OrderStatusDelivered || order.Status == models.OrderStatusCancelled {
		return nil, apperrors.Newf(apperrors.KindInvalidState, "packages of a %s order cannot be updated", order.Status)
	}

	if err := uc.orderRepo.UpdatePackageReceiver(ctx, pkg.ID, req.ReceiverName, req.ReceiverPhone); err != nil {
		return nil, err
	}

	pkg.ReceiverName = req.ReceiverName
	pkg.ReceiverPhone = req.ReceiverPhone
	return pkg, nil
}
