package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftload/swiftload/internal/pkg/apperrors"
	"github.com/swiftload/swiftload/internal/pkg/models"
)

func TestUpdateProfile_CustomerBecomesComplete(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	userID := uuid.New()
	repo.EXPECT().GetOrCreateCustomerProfile(gomock.Any(), userID).Return(&models.CustomerProfile{
		ID:     7,
		UserID: userID,
	}, nil)
	repo.EXPECT().UpdateCustomerProfile(gomock.Any(), gomock.Any()).Return(nil)

	profile, err := uc.UpdateProfile(context.Background(), userID, models.RoleCustomer, &models.ProfileUpdateRequest{
		CustomerName: "Ama Mensah",
		Address:      "12 Quay Lane",
	})

	require.NoError(t, err)
	require.NotNil(t, profile.Customer)
	assert.True(t, profile.Customer.IsComplete)
}

func TestUpdateProfile_DriverIncompleteWithoutLicense(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	userID := uuid.New()
	repo.EXPECT().GetOrCreateDriverProfile(gomock.Any(), userID).Return(&models.DriverProfile{
		ID:     4,
		UserID: userID,
	}, nil)
	repo.EXPECT().UpdateDriverProfile(gomock.Any(), gomock.Any()).Return(nil)

	profile, err := uc.UpdateProfile(context.Background(), userID, models.RoleDriver, &models.ProfileUpdateRequest{
		VehicleType:   "van",
		VehicleNumber: "GX-4411-22",
	})

	require.NoError(t, err)
	require.NotNil(t, profile.Driver)
	assert.False(t, profile.Driver.IsComplete)
}

func TestUpdateProfile_UnknownRole(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.UpdateProfile(context.Background(), uuid.New(), models.RoleAdmin, &models.ProfileUpdateRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestApproveDriver_RejectRequiresReason(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	userID := uuid.New()
	repo.EXPECT().GetUserByEmail(gomock.Any(), "drv@b.test").Return(&models.User{
		ID:   userID,
		Role: models.RoleDriver,
	}, nil)
	repo.EXPECT().GetOrCreateDriverProfile(gomock.Any(), userID).Return(&models.DriverProfile{
		ID:     4,
		UserID: userID,
	}, nil)

	_, err := uc.ApproveDriver(context.Background(), &models.DriverApprovalRequest{
		Email:  "drv@b.test",
		Action: "reject",
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestApproveDriver_RejectsNonDriverAccount(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	repo.EXPECT().GetUserByEmail(gomock.Any(), "cust@b.test").Return(&models.User{
		ID:   uuid.New(),
		Role: models.RoleCustomer,
	}, nil)

	_, err := uc.ApproveDriver(context.Background(), &models.DriverApprovalRequest{
		Email:  "cust@b.test",
		Action: "approve",
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestApproveDriver_ApproveSetsStatus(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	userID := uuid.New()
	repo.EXPECT().GetUserByEmail(gomock.Any(), "drv@b.test").Return(&models.User{
		ID:   userID,
		Role: models.RoleDriver,
	}, nil)
	repo.EXPECT().GetOrCreateDriverProfile(gomock.Any(), userID).Return(&models.DriverProfile{
		ID:     4,
		UserID: userID,
	}, nil)
	repo.EXPECT().UpdateDriverApproval(gomock.Any(), int64(4), models.ApprovalApproved, nil).Return(nil)

	profile, err := uc.ApproveDriver(context.Background(), &models.DriverApprovalRequest{
		Email:  "drv@b.test",
		Action: "approve",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, profile.ApprovalStatus)
}
