package dto

import "courtside/internal/services"

// SeedRequest represents the demo data seeding parameters
type SeedRequest struct {
	Months int `query:"months" validate:"omitempty,min=1,max=12"`
}

// SeedResponse represents the demo data seeding outcome
type SeedResponse struct {
	Summary *services.SeedSummary `json:"summary"`
	Message string                `json:"message"`
}
