package main

import (
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/swiftload/swiftload/internal/pkg/config"
	"github.com/swiftload/swiftload/internal/pkg/database"
	"github.com/swiftload/swiftload/internal/pkg/health"
	"github.com/swiftload/swiftload/internal/pkg/logger"
	"github.com/swiftload/swiftload/internal/pkg/middleware"
	nsqpkg "github.com/swiftload/swiftload/internal/pkg/nsq"
	"github.com/swiftload/swiftload/internal/pkg/server"

	deliveryHandler "github.com/swiftload/swiftload/services/deliveries/handler"
	deliveryHTTP "github.com/swiftload/swiftload/services/deliveries/handler/http"
	deliveryRepository "github.com/swiftload/swiftload/services/deliveries/repository"
	deliveryUsecase "github.com/swiftload/swiftload/services/deliveries/usecase"
	orderHandler "github.com/swiftload/swiftload/services/orders/handler"
	orderHTTP "github.com/swiftload/swiftload/services/orders/handler/http"
	orderRepository "github.com/swiftload/swiftload/services/orders/repository"
	orderUsecase "github.com/swiftload/swiftload/services/orders/usecase"
	userHandler "github.com/swiftload/swiftload/services/users/handler"
	userHTTP "github.com/swiftload/swiftload/services/users/handler/http"
	"github.com/swiftload/swiftload/services/users/gateway"
	userRepository "github.com/swiftload/swiftload/services/users/repository"
	userUsecase "github.com/swiftload/swiftload/services/users/usecase"
)

func main() {
	appName := "swiftload-api"
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
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	db := postgresClient.GetDB()

	// Users service
	userRepo := userRepository.NewUserRepo(configs, db)
	userGW := gateway.NewUserGW(configs, producer)
	userUC := userUsecase.NewUserUC(configs, userRepo, userGW)
	usersHTTP := userHTTP.NewUserHandler(configs, userUC)

	// Orders service
	orderRepo := orderRepository.NewOrderRepo(configs, db)
	orderUC := orderUsecase.NewOrderUC(configs, orderRepo)
	ordersHTTP := orderHTTP.NewOrderHandler(orderUC)

	// Deliveries service
	deliveryRepo := deliveryRepository.NewDeliveryRepo(configs, db)
	deliveryUC := deliveryUsecase.NewDeliveryUC(configs, deliveryRepo)
	deliveriesHTTP := deliveryHTTP.NewDeliveryHandler(deliveryUC)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	userHandler.RegisterRoutes(e, usersHTTP, configs, redisClient.GetClient())
	orderHandler.RegisterRoutes(e, ordersHTTP, configs)
	deliveryHandler.RegisterRoutes(e, deliveriesHTTP, configs)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
