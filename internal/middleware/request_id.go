package middleware

import (
	"finance-tracker/internal/handlers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceIDHeader carries the trace ID in both directions
const TraceIDHeader = "X-Trace-ID"

// RequestID reuses an incoming trace ID or generates one, and exposes it
// on the response header and in the context for error responses and logs.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" || len(traceID) > 128 {
				traceID = uuid.New().String()
			}

			c.Set(handlers.TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID, or "" before RequestID has run
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(handlers.TraceIDContextKey).(string)
	return traceID
}
