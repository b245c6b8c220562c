package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftload/swiftload/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/swiftload/swiftload/services/users UserRepo

// UserRepo defines the persistence operations of the users service.
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ActivateUser(ctx context.Context, id uuid.UUID) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	RefreshRegistration(ctx context.Context, user *models.User) error

	ReplaceOTP(ctx context.Context, otp *models.EmailOTP) error
	GetActiveOTP(ctx context.Context, userID uuid.UUID, purpose string) (*models.EmailOTP, error)
	IncrementOTPAttempts(ctx context.Context, otpID uuid.UUID) (int, error)
	MarkOTPVerified(ctx context.Context, otpID uuid.UUID) error

	GetOrCreateCustomerProfile(ctx context.Context, userID uuid.UUID) (*models.CustomerProfile, error)
	UpdateCustomerProfile(ctx context.Context, profile *models.CustomerProfile) error
	GetOrCreateDriverProfile(ctx context.Context, userID uuid.UUID) (*models.DriverProfile, error)
	UpdateDriverProfile(ctx context.Context, profile *models.DriverProfile) error
	UpdateDriverApproval(ctx context.Context, profileID int64, status string, reason *string) error
}
