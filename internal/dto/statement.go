package dto

import (
	"time"

	"courtside/internal/models"
)

// GetStatementRequest represents the statement query parameters. PlayerID
// narrows the statement to one player on the client's roster.
type GetStatementRequest struct {
	Month    string `query:"month" validate:"required,statement_month"`
	PlayerID string `query:"player_id" validate:"omitempty,uuid"`
}

// StatementResponse wraps a statement with its generation timestamp
type StatementResponse struct {
	Statement   *models.Statement `json:"statement"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// GetAccountsReportRequest represents the receivables rollup query parameters
type GetAccountsReportRequest struct {
	Month string `query:"month" validate:"required,statement_month"`
	Name  string `query:"name" validate:"omitempty,max=255"`
}

// AccountsReportResponse wraps the rollup with its generation timestamp
type AccountsReportResponse struct {
	Report      *models.AccountsReport `json:"report"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// MonthRangeRequest represents an inclusive month range for analytics
type MonthRangeRequest struct {
	From string `query:"from" validate:"required,statement_month"`
	To   string `query:"to" validate:"required,statement_month"`
}

// RevenueTrendResponse represents the dashboard revenue trend
type RevenueTrendResponse struct {
	Points []models.RevenueTrendPoint `json:"points"`
}

// SessionMixRequest represents the session mix query parameters
type SessionMixRequest struct {
	Month string `query:"month" validate:"required,statement_month"`
}

// SessionMixResponse represents a month's session type breakdown
type SessionMixResponse struct {
	Items []models.SessionMixItem `json:"items"`
}

// PeakHoursResponse represents the weekday/hour scheduling heatmap
type PeakHoursResponse struct {
	Cells []models.PeakHourCell `json:"cells"`
}
