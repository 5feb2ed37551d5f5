package dto

import (
	"courtside/internal/models"

	"github.com/google/uuid"
)

// PaymentRequest represents the request to record or amend a payment.
// Amount is a decimal string with at most two decimal places. PlayerID
// earmarks the payment for a single player on that client's roster.
type PaymentRequest struct {
	ClientID  uuid.UUID  `json:"client_id" validate:"required"`
	Date      string     `json:"date" validate:"required,iso_date"`
	Amount    string     `json:"amount" validate:"required,positive_amount"`
	Reference string     `json:"reference" validate:"omitempty,max=255"`
	PlayerID  *uuid.UUID `json:"player_id" validate:"omitempty"`
	ProofURL  string     `json:"proof_url" validate:"omitempty,url,max=2000"`
}

// ListPaymentsRequest represents the payment listing query parameters
type ListPaymentsRequest struct {
	ClientID string `query:"client_id" validate:"omitempty,uuid"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset   int    `query:"offset" validate:"omitempty,min=0"`
}

// ListPaymentsResponse represents a page of recorded payments
type ListPaymentsResponse struct {
	Payments []models.Payment `json:"payments"`
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}
