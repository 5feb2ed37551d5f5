package handlers

import (
	"net/http"

	"courtside/internal/dto"
	"courtside/internal/errors"
	"courtside/internal/services"

	"github.com/labstack/echo/v4"
)

// ClientHandler handles the client directory and player roster endpoints
type ClientHandler struct {
	clientService services.ClientServiceInterface
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService services.ClientServiceInterface) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// CreateClient creates a new billing account
//
// Method: POST /api/v1/clients
// Authentication: Required (admin)
func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req dto.CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	client, err := h.clientService.CreateClient(req.Name, req.Email, req.Phone, req.Status, req.Notes)
	if err != nil {
		switch err {
		case services.ErrInvalidStatus:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Status must be active, inactive, or lead"))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, client)
}

// GetClient returns one client with its payment history
//
// Method: GET /api/v1/clients/:clientId
// Authentication: Required
func (h *ClientHandler) GetClient(c echo.Context) error {
	clientID, err := parseIDParam(c, "clientId")
	if err != nil {
		return SendError(c, errors.ClientInvalidID)
	}

	client, err := h.clientService.GetClient(clientID)
	if err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.ClientNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, client)
}

// ListClients returns a page of the client directory
//
// Method: GET /api/v1/clients
// Authentication: Required (admin)
//
// Query parameters:
//   - q: Case-insensitive name search
//   - status: Filter by client status
//   - limit: Page size (default 50)
//   - offset: Page offset
func (h *ClientHandler) ListClients(c echo.Context) error {
	var req dto.ListClientsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if req.Limit == 0 {
		req.Limit = 50
	}

	clients, total, err := h.clientService.ListClients(req.Query, req.Status, req.Offset, req.Limit)
	if err != nil {
		if err == services.ErrInvalidStatus {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Status must be active, inactive, or lead"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListClientsResponse{
		Clients: clients,
		Total:   total,
		Limit:   req.Limit,
		Offset:  req.Offset,
	})
}

// UpdateClient applies a partial update to a client profile
//
// Method: PUT /api/v1/clients/:clientId
// Authentication: Required (admin)
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	clientID, err := parseIDParam(c, "clientId")
	if err != nil {
		return SendError(c, errors.ClientInvalidID)
	}

	var req dto.UpdateClientRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	client, err := h.clientService.UpdateClient(clientID, services.ClientUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		switch err {
		case services.ErrNotFound:
			return SendError(c, errors.ClientNotFound)
		case services.ErrInvalidStatus:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Status must be active, inactive, or lead"))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, client)
}

// DeleteClient archives a client
//
// Method: DELETE /api/v1/clients/:clientId
// Authentication: Required (admin)
func (h *ClientHandler) DeleteClient(c echo.Context) error {
	clientID, err := parseIDParam(c, "clientId")
	if err != nil {
		return SendError(c, errors.ClientInvalidID)
	}

	if err := h.clientService.DeleteClient(clientID); err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.ClientNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Client deleted"})
}

// FindDuplicates lists groups of clients sharing a normalized name
//
// Method: GET /api/v1/clients/duplicates
// Authentication: Required (admin)
func (h *ClientHandler) FindDuplicates(c echo.Context) error {
	groups, err := h.clientService.FindDuplicates()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DuplicateGroupsResponse{Groups: groups})
}

// MergeClients folds a source client into the target client. Players and
// payments move to the target; the source is archived with an audit note.
//
// Method: POST /api/v1/clients/:clientId/merge
// Authentication: Required (admin)
func (h *ClientHandler) MergeClients(c echo.Context) error {
	targetID, err := parseIDParam(c, "clientId")
	if err != nil {
		return SendError(c, errors.ClientInvalidID)
	}

	var req dto.MergeClientsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.clientService.MergeClients(targetID, req.SourceID)
	if err != nil {
		switch err {
		case services.ErrMergeSameClient:
			return SendError(c, errors.ClientMergeConflict)
		case services.ErrNotFound:
			return SendError(c, errors.ClientNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, result)
}

// CreatePlayer creates a player profile, optionally linked to a client
//
// Method: POST /api/v1/players
// Authentication: Required (admin)
func (h *ClientHandler) CreatePlayer(c echo.Context) error {
	var req dto.CreatePlayerRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	player, err := h.clientService.CreatePlayer(req.Name, req.ClientID, req.BirthYear, req.Level, req.Notes)
	if err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.ClientNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, player)
}

// GetPlayer returns one player profile
//
// Method: GET /api/v1/players/:playerId
// Authentication: Required
func (h *ClientHandler) GetPlayer(c echo.Context) error {
	playerID, err := parseIDParam(c, "playerId")
	if err != nil {
		return SendError(c, errors.PlayerInvalidID)
	}

	player, err := h.clientService.GetPlayer(playerID)
	if err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.PlayerNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, player)
}

// ListPlayers returns a page of player profiles
//
// Method: GET /api/v1/players
// Authentication: Required (admin)
func (h *ClientHandler) ListPlayers(c echo.Context) error {
	limit := getIntParam(c, "limit", 50)
	offset := getIntParam(c, "offset", 0)

	players, total, err := h.clientService.ListPlayers(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListPlayersResponse{
		Players: players,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// UpdatePlayer updates a player profile, including its client link
//
// Method: PUT /api/v1/players/:playerId
// Authentication: Required (admin)
func (h *ClientHandler) UpdatePlayer(c echo.Context) error {
	playerID, err := parseIDParam(c, "playerId")
	if err != nil {
		return SendError(c, errors.PlayerInvalidID)
	}

	var req dto.UpdatePlayerRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	player, err := h.clientService.GetPlayer(playerID)
	if err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.PlayerNotFound)
		}
		return SendSystemError(c, err)
	}

	player.Name = req.Name
	player.ClientID = req.ClientID
	player.BirthYear = req.BirthYear
	player.Level = req.Level
	player.Notes = req.Notes

	if err := h.clientService.UpdatePlayer(player); err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.ClientNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, player)
}

// DeletePlayer removes a player profile. Sessions the player attended keep
// their participant rows, so historical billing is unaffected.
//
// Method: DELETE /api/v1/players/:playerId
// Authentication: Required (admin)
func (h *ClientHandler) DeletePlayer(c echo.Context) error {
	playerID, err := parseIDParam(c, "playerId")
	if err != nil {
		return SendError(c, errors.PlayerInvalidID)
	}

	if err := h.clientService.DeletePlayer(playerID); err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.PlayerNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Player deleted"})
}
