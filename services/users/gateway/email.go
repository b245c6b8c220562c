package gateway

import (
	"context"
	"fmt"

	"github.com/swiftload/swiftload/internal/pkg/logger"
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/internal/pkg/nsq"
)

// UserGW publishes user-service events to the notification queue.
type UserGW struct {
	cfg      *models.Config
	producer *nsq.Producer
}

// NewUserGW creates a new user gateway
func NewUserGW(cfg *models.Config, producer *nsq.Producer) *UserGW {
	return &UserGW{
		cfg:      cfg,
		producer: producer,
	}
}

// PublishOTPEmail hands the issued code to the notification worker. The
// queue gives at-least-once delivery; the worker owns the actual send.
func (g *UserGW) PublishOTPEmail(_ context.Context, event *models.OTPEmailEvent) error {
	if err := g.producer.Publish(g.cfg.NSQ.OTPEmailTopic, event); err != nil {
		return fmt.Errorf("failed to publish OTP email event: %w", err)
	}

	logger.Info("Queued OTP email",
		logger.String("purpose", event.Purpose))
	return nil
}
