package dto

import (
	"courtside/internal/models"
	"courtside/internal/services"

	"github.com/google/uuid"
)

// CreateClientRequest represents the request to create a billing account
type CreateClientRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=255"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" validate:"omitempty,max=50"`
	Status string `json:"status" validate:"omitempty,client_status"`
	Notes  string `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateClientRequest represents a partial update of a client profile.
// Empty name and status leave the stored values unchanged.
type UpdateClientRequest struct {
	Name   string `json:"name" validate:"omitempty,min=1,max=255"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone" validate:"omitempty,max=50"`
	Status string `json:"status" validate:"omitempty,client_status"`
	Notes  string `json:"notes" validate:"omitempty,max=2000"`
}

// ListClientsRequest represents the client directory query parameters
type ListClientsRequest struct {
	Query  string `query:"q" validate:"omitempty,max=255"`
	Status string `query:"status" validate:"omitempty,client_status"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}

// ListClientsResponse represents a page of the client directory
type ListClientsResponse struct {
	Clients []models.Client `json:"clients"`
	Total   int64           `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

// MergeClientsRequest represents the request to fold one client into another
type MergeClientsRequest struct {
	SourceID uuid.UUID `json:"source_id" validate:"required"`
}

// DuplicateGroupsResponse represents the duplicate-name detection output
type DuplicateGroupsResponse struct {
	Groups []services.DuplicateGroup `json:"groups"`
}

// CreatePlayerRequest represents the request to create a player profile.
// ClientID is optional; an unlinked player is a walk-in.
type CreatePlayerRequest struct {
	Name      string     `json:"name" validate:"required,min=1,max=255"`
	ClientID  *uuid.UUID `json:"client_id" validate:"omitempty"`
	BirthYear int        `json:"birth_year" validate:"omitempty,min=1900,max=2100"`
	Level     string     `json:"level" validate:"omitempty,max=50"`
	Notes     string     `json:"notes" validate:"omitempty,max=2000"`
}

// UpdatePlayerRequest represents the request to update a player profile
type UpdatePlayerRequest struct {
	Name      string     `json:"name" validate:"required,min=1,max=255"`
	ClientID  *uuid.UUID `json:"client_id" validate:"omitempty"`
	BirthYear int        `json:"birth_year" validate:"omitempty,min=1900,max=2100"`
	Level     string     `json:"level" validate:"omitempty,max=50"`
	Notes     string     `json:"notes" validate:"omitempty,max=2000"`
}

// ListPlayersResponse represents a page of player profiles
type ListPlayersResponse struct {
	Players []models.Player `json:"players"`
	Total   int64           `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}
