package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/swiftload/swiftload/internal/pkg/config"
	"github.com/swiftload/swiftload/internal/pkg/logger"
	"github.com/swiftload/swiftload/internal/pkg/mailer"
	"github.com/swiftload/swiftload/internal/pkg/models"
	nsqpkg "github.com/swiftload/swiftload/internal/pkg/nsq"
)

// The worker consumes queued OTP email events and delivers them over
// SMTP. The queue redelivers on failure, so transient SMTP outages only
// delay the mail.
func main() {
	appName := "swiftload-worker"
	configPath := flag.String("config", ".env", "path to the env file")
	flag.Parse()

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("topic", configs.NSQ.OTPEmailTopic))

	smtpMailer := mailer.NewSMTPMailer(configs.SMTP)

	consumer, err := nsqpkg.NewConsumer(
		configs.NSQ.OTPEmailTopic,
		configs.NSQ.Channel,
		configs.NSQ.Address,
		func(message []byte) error {
			var event models.OTPEmailEvent
			if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
				// A malformed event will never parse; requeueing it
				// only loops.
				logger.Error("Dropping malformed OTP email event", logger.Err(err))
				return nil
			}

			if err := smtpMailer.SendOTP(&event); err != nil {
				return err
			}

			logger.Info("OTP email sent",
				logger.String("purpose", event.Purpose))
			return nil
		})
	if err != nil {
		zapLogger.Fatal("Failed to start NSQ consumer", logger.Err(err))
	}
	defer consumer.Stop()

	if len(configs.NSQ.LookupAddresses) > 0 {
		if err := consumer.ConnectToLookupd(configs.NSQ.LookupAddresses); err != nil {
			zapLogger.Fatal("Failed to connect to NSQ lookupd", logger.Err(err))
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit

	zapLogger.Info("Shutting down worker", logger.String("signal", sig.String()))
}
