package models

import (
	"time"

	"github.com/google/uuid"
)

// Role values a user account can carry.
const (
	RoleCustomer = "customer"
	RoleDriver   = "driver"
	RoleAdmin    = "admin"
)

// Driver approval states.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// User represents an account in the system (customer, driver or admin).
// Accounts start inactive and are activated by OTP verification.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PhoneNumber  string    `json:"phone_number" db:"phone_number"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// CustomerProfile holds the delivery-facing details of a customer.
// A profile is created lazily on the first profile fetch or update.
type CustomerProfile struct {
	ID           int64     `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	CustomerName string    `json:"customer_name" db:"customer_name"`
	Address      string    `json:"address" db:"address"`
	IsComplete   bool      `json:"is_complete" db:"is_complete"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// DriverProfile holds vehicle and approval state for a driver account.
type DriverProfile struct {
	ID              int64     `json:"id" db:"id"`
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	VehicleType     string    `json:"vehicle_type" db:"vehicle_type"`
	VehicleNumber   string    `json:"vehicle_number" db:"vehicle_number"`
	LicenseNumber   string    `json:"license_number" db:"license_number"`
	IsAvailable     bool      `json:"is_available" db:"is_available"`
	IsComplete      bool      `json:"is_complete" db:"is_complete"`
	ApprovalStatus  string    `json:"approval_status" db:"approval_status"`
	RejectionReason *string   `json:"rejection_reason,omitempty" db:"rejection_reason"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone"`
	Role      string `json:"role" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Password2 string `json:"password2" validate:"required"`
}

// RegisterVerifyRequest carries the OTP entered after registration.
type RegisterVerifyRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// RegisterConfirmRequest carries the scoped registration token.
type RegisterConfirmRequest struct {
	RegisterToken string `json:"register_token" validate:"required"`
}

// PasswordResetRequest starts a password reset flow.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required"`
}

// PasswordResetVerifyRequest carries the OTP entered during a reset.
type PasswordResetVerifyRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// PasswordResetConfirmRequest carries the scoped reset token and the new
// password.
type PasswordResetConfirmRequest struct {
	ResetToken  string `json:"reset_token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// LoginRequest is the payload for the token-obtain endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenRefreshRequest carries a refresh token.
type TokenRefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// TokenVerifyRequest carries a token to check.
type TokenVerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

// TokenPair is an access+refresh credential pair.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthResponse is returned after a successful registration confirm or
// login.
type AuthResponse struct {
	User   *User     `json:"user,omitempty"`
	Tokens TokenPair `json:"tokens"`
}

// Profile is the role-shaped profile envelope returned to a caller.
// Exactly one of Customer or Driver is set.
type Profile struct {
	Role     string           `json:"role"`
	Customer *CustomerProfile `json:"customer_profile,omitempty"`
	Driver   *DriverProfile   `json:"driver_profile,omitempty"`
}

// ProfileUpdateRequest updates whichever profile matches the caller's
// role; fields for the other role are ignored.
type ProfileUpdateRequest struct {
	CustomerName  string `json:"customer_name"`
	Address       string `json:"address"`
	VehicleType   string `json:"vehicle_type"`
	VehicleNumber string `json:"vehicle_number"`
	LicenseNumber string `json:"license_number"`
}

// DriverApprovalRequest is the admin action on a driver application.
type DriverApprovalRequest struct {
	Email           string `json:"email" validate:"required"`
	Action          string `json:"action" validate:"required"`
	RejectionReason string `json:"rejection_reason"`
}
