package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueTrendPoint is one month in the dashboard revenue trend
type RevenueTrendPoint struct {
	Month     string          `json:"month"`
	Fees      decimal.Decimal `json:"fees"`
	Credits   decimal.Decimal `json:"credits"`
	NetBilled decimal.Decimal `json:"net_billed"`
	Collected decimal.Decimal `json:"collected"`
}

// SessionMixItem is one session type's share of a month's schedule
type SessionMixItem struct {
	Type         string          `json:"type"`
	SessionCount int             `json:"session_count"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// ClientHealth summarizes the client base for the dashboard
type ClientHealth struct {
	ActiveCount      int       `json:"active_count"`
	InactiveCount    int       `json:"inactive_count"`
	LeadCount        int       `json:"lead_count"`
	WithBalanceOwed  int       `json:"with_balance_owed"`
	WithCreditOnFile int       `json:"with_credit_on_file"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// PeakHourCell is one weekday/start-hour bucket of the scheduling heatmap.
// Weekday follows time.Weekday (Sunday = 0).
type PeakHourCell struct {
	Weekday      int `json:"weekday"`
	Hour         int `json:"hour"`
	SessionCount int `json:"session_count"`
}
