package handlers

import (
	"fmt"
	"net/http"

	"courtside/internal/dto"
	"courtside/internal/errors"
	"courtside/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	demoDataService services.DemoDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(demoDataService services.DemoDataServiceInterface) *DevHandler {
	return &DevHandler{demoDataService: demoDataService}
}

// SeedDemoData wipes the database and fills it with realistic demo data
//
// Method: POST /api/v1/dev/seed
// Authentication: Required (admin)
// Environment: Development only
//
// Query parameters:
//   - months: Months of history to generate (default: 3, max: 12)
//
// Success Response: 200 OK with dto.SeedResponse
//
// Error Responses:
//   - 403: Not an admin
//   - 404: Seeding disabled in this environment
//   - 500: Internal server error
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	if !getIsAdminFromContext(c) {
		return SendError(c, errors.AuthInsufficientPermission)
	}

	var req dto.SeedRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	summary, err := h.demoDataService.Seed(req.Months)
	if err != nil {
		if err == services.ErrSeedDisabled {
			return SendError(c, errors.SystemNotEnabled)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SeedResponse{
		Summary: summary,
		Message: fmt.Sprintf("Seeded %d clients, %d players, %d sessions", summary.Clients, summary.Players, summary.Sessions),
	})
}
