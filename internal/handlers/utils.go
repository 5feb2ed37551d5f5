package handlers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when the portal identity in context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getClientIDFromContext extracts the authenticated portal client ID from
// context. Returns ErrUnauthorized if it is missing or invalid.
func getClientIDFromContext(c echo.Context) (uuid.UUID, error) {
	clientIDValue := c.Get("client_id")
	if clientIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	clientID, ok := clientIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return clientID, nil
}

// getIsAdminFromContext extracts the is_admin boolean from context
// Returns false if the value is not set or not a boolean
func getIsAdminFromContext(c echo.Context) bool {
	isAdminValue := c.Get("is_admin")
	if isAdminValue == nil {
		return false
	}

	isAdmin, ok := isAdminValue.(bool)
	if !ok {
		return false
	}

	return isAdmin
}

// parseIDParam parses a path parameter as a UUID
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
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

	return c.Request().RemoteAddr
}
