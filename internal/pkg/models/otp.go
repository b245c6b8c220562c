package models

import (
	"time"

	"github.com/google/uuid"
)

// OTP purposes. A code issued for one purpose never verifies another.
const (
	OTPPurposeRegistration  = "registration"
	OTPPurposePasswordReset = "password_reset"
)

// EmailOTP is a one-time code mailed to a user. Codes expire after the
// configured TTL and lock after MaxAttempts consecutive mismatches.
type EmailOTP struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Code         string    `json:"-" db:"code"`
	Purpose      string    `json:"purpose" db:"purpose"`
	IsVerified   bool      `json:"is_verified" db:"is_verified"`
	AttemptCount int       `json:"attempt_count" db:"attempt_count"`
	MaxAttempts  int       `json:"max_attempts" db:"max_attempts"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// IsExpired reports whether the code is older than ttl.
func (o *EmailOTP) IsExpired(ttl time.Duration, now time.Time) bool {
	return now.Sub(o.CreatedAt) > ttl
}

// IsLocked reports whether the attempt budget is exhausted.
func (o *EmailOTP) IsLocked() bool {
	return o.AttemptCount >= o.MaxAttempts
}

// AttemptsLeft returns the remaining verification attempts.
func (o *EmailOTP) AttemptsLeft() int {
	left := o.MaxAttempts - o.AttemptCount
	if left < 0 {
		return 0
	}
	return left
}

// OTPEmailEvent is published to the notification queue when a code is
// issued. The worker renders and sends the mail.
type OTPEmailEvent struct {
	Email    string    `json:"email"`
	Code     string    `json:"code"`
	Purpose  string    `json:"purpose"`
	IssuedAt time.Time `json:"issued_at"`
}
