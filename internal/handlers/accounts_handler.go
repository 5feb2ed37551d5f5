package handlers

import (
	"net/http"
	"time"

	"courtside/internal/dto"
	"courtside/internal/errors"
	"courtside/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountsHandler handles the monthly receivables rollup endpoint
type AccountsHandler struct {
	accountsService services.AccountsServiceInterface
}

// NewAccountsHandler creates a new accounts report handler
func NewAccountsHandler(accountsService services.AccountsServiceInterface) *AccountsHandler {
	return &AccountsHandler{accountsService: accountsService}
}

// GetAccountsReport builds the academy-wide receivables rollup for a month
//
// Method: GET /api/v1/reports/accounts
// Authentication: Required (admin)
//
// Query parameters:
//   - month: Report month, YYYY-MM (required)
//   - name: Case-insensitive client name filter
//
// Success Response: 200 OK with dto.AccountsReportResponse
//
// Error Responses:
//   - 400: Invalid month
//   - 500: Internal server error
func (h *AccountsHandler) GetAccountsReport(c echo.Context) error {
	var req dto.GetAccountsReportRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidMonth)
	}

	report, err := h.accountsService.GetAccountsReport(req.Month, req.Name)
	if err != nil {
		if err == services.ErrInvalidMonth {
			return SendError(c, errors.ValidationInvalidMonth)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountsReportResponse{
		Report:      report,
		GeneratedAt: time.Now().UTC(),
	})
}
