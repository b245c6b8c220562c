package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftload/swiftload/internal/pkg/apperrors"
	"github.com/swiftload/swiftload/internal/pkg/models"
)

func TestCreatePackages_RequiresReceiverDetails(t *testing.T) {
	uc, repo := newTestUC(t)

	profile := completeCustomer()
	repo.EXPECT().GetCustomerProfileByUserID(gomock.Any(), profile.UserID).Return(profile, nil)
	repo.EXPECT().GetOrderByID(gomock.Any(), "ORD11111111").Return(&models.Order{
		ID:         "ORD11111111",
		CustomerID: profile.ID,
		Status:     models.OrderStatusPending,
	}, nil)

	_, err := uc.CreatePackages(context.Background(), profile.UserID, &models.PackageCreateRequest{
		OrderID: "ORD11111111",
		Packages: []models.PackageInput{
			{Description: "Spare parts", ReceiverName: "Kofi"},
		},
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestCreatePackages_RejectsForeignOrder(t *testing.T) {
	uc, repo := newTestUC(t)

	profile := completeCustomer()
	repo.EXPECT().GetCustomerProfileByUserID(gomock.Any(), profile.UserID).Return(profile, nil)
	repo.EXPECT().GetOrderByID(gomock.Any(), "ORD11111111").Return(&models.Order{
		ID:         "ORD11111111",
		CustomerID: profile.ID + 1,
		Status:     models.OrderStatusPending,
	}, nil)

	_, err := uc.CreatePackages(context.Background(), profile.UserID, &models.PackageCreateRequest{
		OrderID: "ORD11111111",
		Packages: []models.PackageInput{
			{Description: "Spare parts", ReceiverName: "Kofi", ReceiverPhone: "0201234567"},
		},
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))
}

func TestCreatePackages_RejectsClosedOrder(t *testing.T) {
	uc, repo := newTestUC(t)

	profile := completeCustomer()
	repo.EXPECT().GetCustomerProfileByUserID(gomock.Any(), profile.UserID).Return(profile, nil)
	repo.EXPECT().GetOrderByID(gomock.Any(), "ORD11111111").Return(&models.Order{
		ID:         "ORD11111111",
		CustomerID: profile.ID,
		Status:     models.OrderStatusDelivered,
	}, nil)

	_, err := uc.CreatePackages(context.Background(), profile.UserID, &models.PackageCreateRequest{
		OrderID: "ORD11111111",
		Packages: []models.PackageInput{
			{Description: "Spare parts", ReceiverName: "Kofi", ReceiverPhone: "0201234567"},
		},
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidState))
}

func TestCreatePackages_CreatesPendingPayments(t *testing.T) {
	uc, repo := newTestUC(t)

	profile := completeCustomer()
	repo.EXPECT().GetCustomerProfileByUserID(gomock.Any(), profile.UserID).Return(profile, nil)
	repo.EXPECT().GetOrderByID(gomock.Any(), "ORD11111111").Return(&models.Order{
		ID:         "ORD11111111",
		CustomerID: profile.ID,
		Status:     models.OrderStatusAssigned,
	}, nil)

	repo.EXPECT().
		CreatePackages(gomock.Any(), "ORD11111111", gomock.Any(), gomock.Any(), 55.0).
		DoAndReturn(func(_ context.Context, _ string, pkgs []*models.Package, payments []*models.Payment, _ float64) error {
			require.Len(t, pkgs, 2)
			require.Len(t, payments, 2)
			for i, payment := range payments {
				assert.Equal(t, pkgs[i].ID, payment.PackageID)
				assert.Equal(t, models.PaymentStatusPending, payment.Status)
				assert.Regexp(t, `^TXN[0-9A-F]{8}$`, payment.ID)
				assert.Regexp(t, `^PKG[0-9A-F]{8}$`, pkgs[i].ID)
			}
			assert.Equal(t, models.PaymentMethodCash, payments[0].Method)
			assert.Equal(t, models.PaymentMethodMobileMoney, payments[1].Method)
			return nil
		})

	packages, err := uc.CreatePackages(context.Background(), profile.UserID, &models.PackageCreateRequest{
		OrderID: "ORD11111111",
		Packages: []models.PackageInput{
			{Description: "Spare parts", ReceiverName: "Kofi", ReceiverPhone: "0201234567", Amount: 25},
			{Description: "Textiles", ReceiverName: "Esi", ReceiverPhone: "0209876543", Amount: 30, PaymentMethod: models.PaymentMethodMobileMoney},
		},
	})

	require.NoError(t, err)
	assert.Len(t, packages, 2)
}

func TestUpdatePackage_RejectsForeignPackage(t *testing.T) {
	uc, repo := newTestUC(t)

	profile := completeCustomer()
	repo.EXPECT().GetCustomerProfileByUserID(gomock.Any(), profile.UserID).Return(profile, nil)
	repo.EXPECT().GetPackageByID(gomock.Any(), "PKG11111111").Return(&models.Package{
		ID:      "PKG11111111",
		OrderID: "ORD11111111",
	}, nil)
	repo.EXPECT().GetOrderByID(gomock.Any(), "ORD11111111").Return(&models.Order{
		ID:         "ORD11111111",
		CustomerID: profile.ID + 1,
		Status:     models.OrderStatusAssigned,
	}, nil)

	_, err := uc.UpdatePackage(context.Background(), profile.UserID, &models.PackageUpdateRequest{
		PackageID:     "PKG11111111",
		ReceiverName:  "Kofi",
		ReceiverPhone: "0201234567",
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))
}

func TestUpdatePackage_UpdatesReceiver(t *testing.T) {
	uc, repo := newTestUC(t)

	profile := completeCustomer()
	repo.EXPECT().GetCustomerProfileByUserID(gomock.Any(), profile.UserID).Return(profile, nil)
	repo.EXPECT().GetPackageByID(gomock.Any(), "PKG11111111").Return(&models.Package{
		ID:      "PKG11111111",
		OrderID: "ORD11111111",
	}, nil)
	repo.EXPECT().GetOrderByID(gomock.Any(), "ORD11111111").Return(&models.Order{
		ID:         "ORD11111111",
		CustomerID: profile.ID,
		Status:     models.OrderStatusInTransit,
	}, nil)
	repo.EXPECT().UpdatePackageReceiver(gomock.Any(), "PKG11111111", "Kofi", "0201234567").Return(nil)

	pkg, err := uc.UpdatePackage(context.Background(), profile.UserID, &models.PackageUpdateRequest{
		PackageID:     "PKG11111111",
		ReceiverName:  "Kofi",
		ReceiverPhone: "0201234567",
	})

	require.NoError(t, err)
	assert.Equal(t, "Kofi", pkg.ReceiverName)
	assert.Equal(t, "0201234567", pkg.ReceiverPhone)
}
