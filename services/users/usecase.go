package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/swiftload/swiftload/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/swiftload/swiftload/services/users UserUC

// UserUC defines the user usecase operations: registration and password
// reset (both OTP gated), token issuance and profile management.
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) error
	VerifyRegistration(ctx context.Context, email, code string) (string, error)
	ConfirmRegistration(ctx context.Context, registerToken string) (*models.AuthResponse, error)

	RequestPasswordReset(ctx context.Context, email string) error
	VerifyPasswordReset(ctx context.Context, email, code string) (string, error)
	ConfirmPasswordReset(ctx context.Context, resetToken, newPassword string) error

	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error)

	GetProfile(ctx context.Context, userID uuid.UUID, role string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, role string, req *models.ProfileUpdateRequest) (*models.Profile, error)
	ApproveDriver(ctx context.Context, req *models.DriverApprovalRequest) (*models.DriverProfile, error)
}
