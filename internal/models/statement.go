package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatementScopeFamily = "family"
	StatementScopePlayer = "player"
)

// Statement is a month-scoped view of a client's ledger: one section per
// player, each with its own opening balance carried forward from all prior
// activity, plus a grand total across displayed sections.
type Statement struct {
	ClientID   uuid.UUID          `json:"client_id"`
	ClientName string             `json:"client_name"`
	Month      string             `json:"month"`
	Scope      string             `json:"scope"`
	Sections   []StatementSection `json:"sections"`
	GrandTotal decimal.Decimal    `json:"grand_total"`
}

// StatementSection is one player's slice of the statement
type StatementSection struct {
	PlayerID       uuid.UUID       `json:"player_id"`
	PlayerName     string          `json:"player_name"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Rows           []StatementRow  `json:"rows"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// StatementRow is one ledger entry rendered with its running balance
type StatementRow struct {
	Date           string          `json:"date"`
	Description    string          `json:"description"`
	Kind           string          `json:"kind"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"running_balance"`
	ProofURL       string          `json:"proof_url,omitempty"`
}
