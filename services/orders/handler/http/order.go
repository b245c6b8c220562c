package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swiftload/swiftload/internal/pkg/middleware"
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/internal/utils"
	"github.com/swiftload/swiftload/services/orders"
)

// OrderHandler handles HTTP requests for the orders service.
type OrderHandler struct {
	orderUC orders.OrderUC
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUC orders.OrderUC) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
	}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "order created", order)
}

// AssignOrder handles PUT /orders/assign
func (h *OrderHandler) AssignOrder(c echo.Context) error {
	var req models.OrderAssignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.OrderID == "" || req.DriverEmail == "" {
		return utils.BadRequestResponse(c, "order_id and driver_email are required")
	}

	order, err := h.orderUC.AssignOrder(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "order assigned", order)
}

// CancelOrder handles PUT /orders/cancel
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.OrderCancelRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.OrderID == "" {
		return utils.BadRequestResponse(c, "order_id is required")
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "order cancelled", order)
}

// CreatePackages handles POST /orders/packages
func (h *OrderHandler) CreatePackages(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.PackageCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.OrderID == "" {
		return utils.BadRequestResponse(c, "order_id is required")
	}

	packages, err := h.orderUC.CreatePackages(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "packages created", packages)
}

// UpdatePackage handles PUT /orders/packages/update
func (h *OrderHandler) UpdatePackage(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.PackageUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.PackageID == "" {
		return utils.BadRequestResponse(c, "package_id is required")
	}

	pkg, err := h.orderUC.UpdatePackage(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "package updated", pkg)
}
