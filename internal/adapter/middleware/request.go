package middleware

import (
	"studentloan-backend/internal/logging"

	"github.com/labstack/echo/v4"
)

// RequestContext puts the request id (set by echo's RequestID middleware)
// on the request context so usecase logs carry it.
func RequestContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Request().Header.Get(echo.HeaderXRequestID)
			}
			if id != "" {
				req := c.Request()
				c.SetRequest(req.WithContext(logging.WithRequestID(req.Context(), id)))
			}
			return next(c)
		}
	}
}
