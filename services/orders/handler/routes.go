package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/swiftload/swiftload/internal/pkg/middleware"
	"github.com/swiftload/swiftload/internal/pkg/models"
	httphandler "github.com/swiftload/swiftload/services/orders/handler/http"
)

// RegisterRoutes wires the orders service endpoints. Customers own the
// order and package endpoints; explicit assignment is admin-only.
func RegisterRoutes(e *echo.Echo, h *httphandler.OrderHandler, cfg *models.Config) {
	jwtAuth := middleware.JWTAuthMiddleware(cfg.JWT)

	ordersGroup := e.Group("/orders", jwtAuth)
	ordersGroup.POST("", h.CreateOrder, middleware.RequireRole(models.RoleCustomer))
	ordersGroup.PUT("/assign", h.AssignOrder, middleware.RequireRole(models.RoleAdmin))
	ordersGroup.PUT("/cancel", h.CancelOrder, middleware.RequireRole(models.RoleCustomer))
	ordersGroup.POST("/packages", h.CreatePackages, middleware.RequireRole(models.RoleCustomer))
	ordersGroup.PUT("/packages/update", h.UpdatePackage, middleware.RequireRole(models.RoleCustomer))
}
