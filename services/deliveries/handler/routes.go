package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/swiftload/swiftload/internal/pkg/middleware"
	"github.com/swiftload/swiftload/internal/pkg/models"
	httphandler "github.com/swiftload/swiftload/services/deliveries/handler/http"
)

// RegisterRoutes wires the deliveries service endpoints. Creation and
// rider reassignment are admin operations; status updates belong to
// drivers; payment lookups are open to every authenticated role and
// scoped inside the usecase.
func RegisterRoutes(e *echo.Echo, h *httphandler.DeliveryHandler, cfg *models.Config) {
	jwtAuth := middleware.JWTAuthMiddleware(cfg.JWT)

	deliveriesGroup := e.Group("/deliveries", jwtAuth)
	deliveriesGroup.POST("", h.CreateDeliveries, middleware.RequireRole(models.RoleAdmin))
	deliveriesGroup.PUT("/update", h.UpdateDelivery, middleware.RequireRole(models.RoleDriver))
	deliveriesGroup.PUT("/:delivery_id/assign", h.AssignRider, middleware.RequireRole(models.RoleAdmin))

	e.GET("/payments/:package_id", h.GetPayment, jwtAuth)
}
