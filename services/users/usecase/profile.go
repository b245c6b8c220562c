package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftload/swiftload/internal/pkg/apperrors"
	"github.com/swiftload/swiftload/internal/pkg/logger"
	"github.com/swiftload/swiftload/internal/pkg/models"
)

// GetProfile returns the role-shaped profile, creating an empty one on
// first access.
func (uc *UserUC) GetProfile(ctx context.Context, userID uuid.UUID, role string) (*models.Profile, error) {
	switch role {
	case models.RoleCustomer:
		profile, err := uc.userRepo.GetOrCreateCustomerProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &models.Profile{Role: role, Customer: profile}, nil

	case models.RoleDriver:
		profile, err := uc.userRepo.GetOrCreateDriverProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &models.Profile{Role: role, Driver: profile}, nil

	default:
		return nil, apperrors.New(apperrors.KindNotFound, "no profile for this role")
	}
}

// UpdateProfile applies a partial update to the caller's profile and
// recomputes the completeness flag. Completeness gates order creation
// for customers and matching eligibility for drivers.
func (uc *UserUC) UpdateProfile(ctx context.Context, userID uuid.UUID, role string, req *models.ProfileUpdateRequest) (*models.Profile, error) {
	switch role {
	case models.RoleCustomer:
		profile, err := uc.userRepo.GetOrCreateCustomerProfile(ctx, userID)
		if err != nil {
			return nil, err
		}

		if req.CustomerName != "" {
			profile.CustomerName = req.CustomerName
		}
		if req.Address != "" {
			profile.Address = req.Address
		}
		profile.IsComplete = profile.CustomerName != "" && profile.Address != ""

		if err := uc.userRepo.UpdateCustomerProfile(ctx, profile); err != nil {
			return nil, err
		}
		return &models.Profile{Role: role, Customer: profile}, nil

	case models.RoleDriver:
		profile, err := uc.userRepo.GetOrCreateDriverProfile(ctx, userID)
		if err != nil {
			return nil, err
		}

		if req.VehicleType != "" {
			profile.VehicleType = req.VehicleType
		}
		if req.VehicleNumber != "" {
			profile.VehicleNumber = req.VehicleNumber
		}
		if req.LicenseNumber != "" {
			profile.LicenseNumber = req.LicenseNumber
		}
		profile.IsComplete = profile.VehicleType != "" &&
			profile.VehicleNumber != "" &&
			profile.LicenseNumber != ""

		if err := uc.userRepo.UpdateDriverProfile(ctx, profile); err != nil {
			return nil, err
		}
		return &models.Profile{Role: role, Driver: profile}, nil

	default:
		return nil, apperrors.New(apperrors.KindNotFound, "no profile for this role")
	}
}

// ApproveDriver records the admin decision on a driver application.
func (uc *UserUC) ApproveDriver(ctx context.Context, req *models.DriverApprovalRequest) (*models.DriverProfile, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleDriver {
		return nil, apperrors.New(apperrors.KindValidation, "user is not a driver")
	}

	profile, err := uc.userRepo.GetOrCreateDriverProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	var status string
	var reason *string
	switch req.Action {
	case "approve":
		status = models.ApprovalApproved
	case "reject":
		if req.RejectionReason == "" {
			return nil, apperrors.New(apperrors.KindValidation, "rejection_reason is required when rejecting")
		}
		status = models.ApprovalRejected
		reason = &req.RejectionReason
	default:
		return nil, apperrors.New(apperrors.KindValidation, "action must be approve or reject")
	}

	if err := uc.userRepo.UpdateDriverApproval(ctx, profile.ID, status, reason); err != nil {
		return nil, err
	}

	profile.ApprovalStatus = status
	profile.RejectionReason = reason

	logger.Info("Driver application decided",
		logger.String("status", status))
	return profile, nil
}
