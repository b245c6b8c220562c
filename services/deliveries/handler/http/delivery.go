package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swiftload/swiftload/internal/pkg/middleware"
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/internal/utils"
	"github.com/swiftload/swiftload/services/deliveries"
)

// DeliveryHandler handles HTTP requests for the deliveries service.
type DeliveryHandler struct {
	deliveryUC deliveries.DeliveryUC
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(deliveryUC deliveries.DeliveryUC) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: deliveryUC,
	}
}

// CreateDeliveries handles POST /deliveries
func (h *DeliveryHandler) CreateDeliveries(c echo.Context) error {
	var req models.DeliveryCreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	created, err := h.deliveryUC.CreateDeliveries(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "deliveries created", created)
}

// UpdateDelivery handles PUT /deliveries/update
func (h *DeliveryHandler) UpdateDelivery(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DeliveryUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.PackageID == "" || req.DeliveryStatus == "" {
		return utils.BadRequestResponse(c, "package_id and delivery_status are required")
	}

	delivery, err := h.deliveryUC.UpdateDelivery(c.Request().Context(), userID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "delivery updated", delivery)
}

// AssignRider handles PUT /deliveries/:delivery_id/assign
func (h *DeliveryHandler) AssignRider(c echo.Context) error {
	deliveryID := c.Param("delivery_id")
	if deliveryID == "" {
		return utils.BadRequestResponse(c, "delivery_id is required")
	}

	delivery, err := h.deliveryUC.AssignRider(c.Request().Context(), deliveryID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "rider assigned", delivery)
}

// GetPayment handles GET /payments/:package_id
func (h *DeliveryHandler) GetPayment(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	packageID := c.Param("package_id")
	if packageID == "" {
		return utils.BadRequestResponse(c, "package_id is required")
	}

	payment, err := h.deliveryUC.GetPayment(c.Request().Context(), userID, middleware.RoleFromContext(c), packageID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", payment)
}
