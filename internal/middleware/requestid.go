package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderRequestID is the header carrying the request correlation ID.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns each request a correlation ID. An inbound
// X-Request-ID is honored; otherwise a new one is generated. The ID is
// echoed on the response and stored in the request context for handlers.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set("request_id", id)
			c.Response().Header().Set(HeaderRequestID, id)
			return next(c)
		}
	}
}

// GetRequestID returns the correlation ID set by RequestID, or "" if the
// middleware did not run.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)
	return id
}
