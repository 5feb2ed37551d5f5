package handlers

import (
	"net/http"

	"courtside/internal/dto"
	"courtside/internal/errors"
	"courtside/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles the dashboard analytics endpoints
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetRevenueTrend returns per-month billed and collected figures
//
// Method: GET /api/v1/analytics/revenue-trend
// Authentication: Required (admin)
//
// Query parameters:
//   - from: First month, YYYY-MM (required)
//   - to: Last month inclusive, YYYY-MM (required)
func (h *AnalyticsHandler) GetRevenueTrend(c echo.Context) error {
	var req dto.MonthRangeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidMonth)
	}

	points, err := h.analyticsService.GetRevenueTrend(req.From, req.To)
	if err != nil {
		switch err {
		case services.ErrInvalidMonth:
			return SendError(c, errors.ValidationInvalidMonth)
		case services.ErrInvalidMonthRange:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Month range is invalid or too wide"))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.RevenueTrendResponse{Points: points})
}

// GetSessionMix returns a month's session type breakdown
//
// Method: GET /api/v1/analytics/session-mix
// Authentication: Required (admin)
//
// Query parameters:
//   - month: Month to break down, YYYY-MM (required)
func (h *AnalyticsHandler) GetSessionMix(c echo.Context) error {
	var req dto.SessionMixRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidMonth)
	}

	items, err := h.analyticsService.GetSessionMix(req.Month)
	if err != nil {
		if err == services.ErrInvalidMonth {
			return SendError(c, errors.ValidationInvalidMonth)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SessionMixResponse{Items: items})
}

// GetClientHealth returns client base counts and balance standing
//
// Method: GET /api/v1/analytics/client-health
// Authentication: Required (admin)
func (h *AnalyticsHandler) GetClientHealth(c echo.Context) error {
	health, err := h.analyticsService.GetClientHealth()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, health)
}

// GetPeakHours returns the weekday/start-hour scheduling heatmap
//
// Method: GET /api/v1/analytics/peak-hours
// Authentication: Required (admin)
//
// Query parameters:
//   - from: First month, YYYY-MM (required)
//   - to: Last month inclusive, YYYY-MM (required)
func (h *AnalyticsHandler) GetPeakHours(c echo.Context) error {
	var req dto.MonthRangeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidMonth)
	}

	cells, err := h.analyticsService.GetPeakHours(req.From, req.To)
	if err != nil {
		switch err {
		case services.ErrInvalidMonth:
			return SendError(c, errors.ValidationInvalidMonth)
		case services.ErrInvalidMonthRange:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Month range is invalid or too wide"))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.PeakHoursResponse{Cells: cells})
}
