package handlers

import (
	"net/http"
	"time"

	"courtside/internal/dto"
	"courtside/internal/errors"
	"courtside/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// StatementHandler handles statement generation requests
type StatementHandler struct {
	statementService services.StatementServiceInterface
}

// NewStatementHandler creates a new statement handler
func NewStatementHandler(statementService services.StatementServiceInterface) *StatementHandler {
	return &StatementHandler{statementService: statementService}
}

// GetStatement builds a client's monthly statement
//
// Method: GET /api/v1/clients/:clientId/statements
// Authentication: Required
//
// Path parameters:
//   - clientId: Client UUID
//
// Query parameters:
//   - month: Statement month, YYYY-MM (required)
//   - player_id: Restrict the statement to one player on the roster
//
// Success Response: 200 OK with dto.StatementResponse
//
// Error Responses:
//   - 400: Invalid client ID, month, or player ID
//   - 404: Client not found
//   - 422: Player not linked to the client
//   - 500: Internal server error
func (h *StatementHandler) GetStatement(c echo.Context) error {
	clientID, err := parseIDParam(c, "clientId")
	if err != nil {
		return SendError(c, errors.ClientInvalidID)
	}

	var req dto.GetStatementRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidMonth)
	}

	var playerID *uuid.UUID
	if req.PlayerID != "" {
		parsed, err := uuid.Parse(req.PlayerID)
		if err != nil {
			return SendError(c, errors.PlayerInvalidID)
		}
		playerID = &parsed
	}

	statement, err := h.statementService.GetStatement(clientID, req.Month, playerID)
	if err != nil {
		switch {
		case err == services.ErrInvalidMonth:
			return SendError(c, errors.ValidationInvalidMonth)
		case err == services.ErrNotFound:
			return SendError(c, errors.ClientNotFound)
		case err == services.ErrPlayerNotLinked:
			return SendError(c, errors.PlayerNotOfClient)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.StatementResponse{
		Statement:   statement,
		GeneratedAt: time.Now().UTC(),
	})
}
