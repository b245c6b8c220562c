package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swiftload/swiftload/internal/pkg/middleware"
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/internal/utils"
)

// GetProfile handles GET /profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), userID, middleware.RoleFromContext(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// UpdateProfile handles PUT /profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	profile, err := h.userUC.UpdateProfile(c.Request().Context(), userID, middleware.RoleFromContext(c), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "profile updated", profile)
}

// ApproveDriver handles PUT /admin/drivers/approve
func (h *UserHandler) ApproveDriver(c echo.Context) error {
	var req models.DriverApprovalRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.Email == "" || req.Action == "" {
		return utils.BadRequestResponse(c, "email and action are required")
	}

	profile, err := h.userUC.ApproveDriver(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "driver application "+profile.ApprovalStatus, profile)
}
