package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/swiftload/swiftload/internal/pkg/logger"
	"github.com/swiftload/swiftload/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// and answers with a 500.
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered",
						logger.String("path", c.Path()),
						logger.Any("panic", r),
						logger.String("stack", string(debug.Stack())),
					)
					err = utils.InternalServerErrorResponse(c, fmt.Sprintf("internal error: %v", r))
				}
			}()
			return next(c)
		}
	}
}
