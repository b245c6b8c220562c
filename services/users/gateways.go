package users

import (
	"context"

	"github.com/swiftload/swiftload/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/swiftload/swiftload/services/users UserGW

// UserGW defines the outbound gateway operations of the users service.
type UserGW interface {
	// PublishOTPEmail hands the issued code to the notification queue.
	PublishOTPEmail(ctx context.Context, event *models.OTPEmailEvent) error
}
