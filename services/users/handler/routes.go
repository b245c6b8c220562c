package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/swiftload/swiftload/internal/pkg/middleware"
	"github.com/swiftload/swiftload/internal/pkg/models"
	httphandler "github.com/swiftload/swiftload/services/users/handler/http"
)

// RegisterRoutes wires the users service endpoints. OTP endpoints sit
// behind Redis rate limiters; profile and admin endpoints require an
// access token.
func RegisterRoutes(e *echo.Echo, h *httphandler.UserHandler, cfg *models.Config, redisClient *redis.Client) {
	issueLimiter := middleware.OTPIssueRateLimiter(
		cfg.RateLimit.IssueLimit,
		time.Duration(cfg.RateLimit.IssuePeriod)*time.Second,
		redisClient)
	verifyLimiter := middleware.OTPVerifyRateLimiter(
		cfg.RateLimit.VerifyLimit,
		time.Duration(cfg.RateLimit.VerifyPeriod)*time.Second,
		redisClient)

	auth := e.Group("/auth")
	auth.POST("/register", h.Register, issueLimiter)
	auth.POST("/register/verify", h.VerifyRegistration, verifyLimiter)
	auth.POST("/register/confirm", h.ConfirmRegistration)
	auth.POST("/password-reset/request", h.RequestPasswordReset, issueLimiter)
	auth.POST("/password-reset/verify", h.VerifyPasswordReset, verifyLimiter)
	auth.POST("/password-reset/confirm", h.ConfirmPasswordReset)
	auth.POST("/token", h.Login)
	auth.POST("/token/refresh", h.RefreshTokens)
	auth.POST("/token/verify", h.VerifyToken)

	jwtAuth := middleware.JWTAuthMiddleware(cfg.JWT)

	profile := e.Group("/profile", jwtAuth,
		middleware.RequireRole(models.RoleCustomer, models.RoleDriver))
	profile.GET("", h.GetProfile)
	profile.PUT("", h.UpdateProfile)

	admin := e.Group("/admin", jwtAuth, middleware.RequireRole(models.RoleAdmin))
	admin.PUT("/drivers/approve", h.ApproveDriver)
}
