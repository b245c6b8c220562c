package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/swiftload/swiftload/internal/pkg/jwt"
	"github.com/swiftload/swiftload/internal/pkg/models"
	"github.com/swiftload/swiftload/internal/utils"
)

// Context keys set by the auth middleware.
const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "user_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			// Only access tokens grant API access; refresh and scoped
			// tokens must not.
			if tokenType, _ := claims["type"].(string); tokenType != "access" {
				return utils.UnauthorizedResponse(c, "Invalid token type")
			}

			userIDStr, ok := claims["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := claims["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			c.Set(ContextKeyUserID, userID)
			c.Set(ContextKeyRole, fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}

// RequireRole rejects callers whose role claim does not match any of the
// allowed roles.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(string)
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient role")
		}
	}
}

// UserIDFromContext extracts the authenticated user id set by
// JWTAuthMiddleware.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	return userID, ok
}

// RoleFromContext extracts the authenticated role set by
// JWTAuthMiddleware.
func RoleFromContext(c echo.Context) string {
	role, _ := c.Get(ContextKeyRole).(string)
	return role
}
