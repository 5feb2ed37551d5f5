package dto

import (
	"courtside/internal/models"

	"github.com/google/uuid"
)

// SessionRequest represents the request to schedule or reschedule a
// training session. Price is a decimal string so no float rounding can
// creep in before the billing layer sees it.
type SessionRequest struct {
	Date      string      `json:"date" validate:"required,iso_date"`
	StartTime string      `json:"start_time" validate:"required,time_of_day"`
	EndTime   string      `json:"end_time" validate:"required,time_of_day"`
	Type      string      `json:"type" validate:"required,session_type"`
	Location  string      `json:"location" validate:"omitempty,max=255"`
	Price     string      `json:"price" validate:"required"`
	Notes     string      `json:"notes" validate:"omitempty,max=2000"`
	PlayerIDs []uuid.UUID `json:"player_ids" validate:"omitempty,max=20"`
}

// ListSessionsRequest represents the schedule query parameters. Both dates
// must be given together; omitting both lists every session.
type ListSessionsRequest struct {
	StartDate string `query:"start_date" validate:"omitempty,iso_date"`
	EndDate   string `query:"end_date" validate:"omitempty,iso_date"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset    int    `query:"offset" validate:"omitempty,min=0"`
}

// ListSessionsResponse represents a page of the schedule
type ListSessionsResponse struct {
	Sessions []models.TrainingSession `json:"sessions"`
	Total    int64                    `json:"total"`
	Limit    int                      `json:"limit"`
	Offset   int                      `json:"offset"`
}

// CancelSessionRequest represents the request to flip a session's
// cancellation flag
type CancelSessionRequest struct {
	Cancelled bool `json:"cancelled"`
}

// DayEventRequest represents the request to mark a day as rained out or closed
type DayEventRequest struct {
	Date string `json:"date" validate:"required,iso_date"`
	Kind string `json:"kind" validate:"required,day_event_kind"`
	Note string `json:"note" validate:"omitempty,max=2000"`
}

// ListDayEventsResponse represents a month's day events
type ListDayEventsResponse struct {
	Events []models.DayEvent `json:"events"`
}
