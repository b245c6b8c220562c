package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swiftload/swiftload/internal/pkg/jwt"
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/internal/utils"
	"github.com/swiftload/swiftload/services/users"
)

// UserHandler handles HTTP requests for the users service.
type UserHandler struct {
	cfg    *models.Config
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(cfg *models.Config, userUC users.UserUC) *UserHandler {
	return &UserHandler{
		cfg:    cfg,
		userUC: userUC,
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return utils.BadRequestResponse(c, "email, password and role are required")
	}

	if err := h.userUC.Register(c.Request().Context(), &req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "verification code sent", nil)
}

// VerifyRegistration handles POST /auth/register/verify
func (h *UserHandler) VerifyRegistration(c echo.Context) error {
	var req models.RegisterVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.Email == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "email and otp are required")
	}

	token, err := h.userUC.VerifyRegistration(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "email verified", map[string]string{
		"register_token": token,
	})
}

// ConfirmRegistration handles POST /auth/register/confirm
func (h *UserHandler) ConfirmRegistration(c echo.Context) error {
	var req models.RegisterConfirmRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.RegisterToken == "" {
		return utils.BadRequestResponse(c, "register_token is required")
	}

	resp, err := h.userUC.ConfirmRegistration(c.Request().Context(), req.RegisterToken)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "registration completed", resp)
}

// RequestPasswordReset handles POST /auth/password-reset/request
func (h *UserHandler) RequestPasswordReset(c echo.Context) error {
	var req models.PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.Email == "" {
		return utils.BadRequestResponse(c, "email is required")
	}

	if err := h.userUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	// Same response whether or not the address has an account.
	return utils.SuccessResponse(c, http.StatusOK, "if the address has an account, a code was sent", nil)
}

// VerifyPasswordReset handles POST /auth/password-reset/verify
func (h *UserHandler) VerifyPasswordReset(c echo.Context) error {
	var req models.PasswordResetVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.Email == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "email and otp are required")
	}

	token, err := h.userUC.VerifyPasswordReset(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "code verified", map[string]string{
		"reset_token": token,
	})
}

// ConfirmPasswordReset handles POST /auth/password-reset/confirm
func (h *UserHandler) ConfirmPasswordReset(c echo.Context) error {
	var req models.PasswordResetConfirmRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.ResetToken == "" || req.NewPassword == "" {
		return utils.BadRequestResponse(c, "reset_token and new_password are required")
	}

	if err := h.userUC.ConfirmPasswordReset(c.Request().Context(), req.ResetToken, req.NewPassword); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "password updated", nil)
}

// Login handles POST /auth/token
func (h *UserHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "email and password are required")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "authenticated", resp)
}

// RefreshTokens handles POST /auth/token/refresh
func (h *UserHandler) RefreshTokens(c echo.Context) error {
	var req models.TokenRefreshRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.Refresh == "" {
		return utils.BadRequestResponse(c, "refresh is required")
	}

	pair, err := h.userUC.RefreshTokens(c.Request().Context(), req.Refresh)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "tokens refreshed", pair)
}

// VerifyToken handles POST /auth/token/verify
func (h *UserHandler) VerifyToken(c echo.Context) error {
	var req models.TokenVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if req.Token == "" {
		return utils.BadRequestResponse(c, "token is required")
	}

	if _, err := jwt.ValidateToken(req.Token, h.cfg.JWT.Secret); err != nil {
		return utils.UnauthorizedResponse(c, "Invalid or expired token")
	}

	return utils.SuccessResponse(c, http.StatusOK, "token is valid", nil)
}
