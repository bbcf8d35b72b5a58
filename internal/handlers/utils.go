package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// UserIDContextKey holds the authenticated user's id, set by the auth middleware
	UserIDContextKey = "user_id"

	// UserEmailContextKey holds the email claim of the bearer token
	UserEmailContextKey = "user_email"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get(UserIDContextKey)
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

// getUserEmailFromContext returns the email claim, empty when the token carried none
func getUserEmailFromContext(c echo.Context) string {
	email, _ := c.Get(UserEmailContextKey).(string)
	return email
}

// getUUIDParam parses a path parameter as a UUID
func getUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue
	}

	return value
}

// getBoolParam reads a boolean query parameter; anything unparsable counts as false
func getBoolParam(c echo.Context, name string) bool {
	value, err := strconv.ParseBool(c.QueryParam(name))
	return err == nil && value
}

// parseOptionalDate parses a YYYY-MM-DD value; empty input yields the zero time
func parseOptionalDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	return models.ParseDate(value)
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.RealIP()
}
