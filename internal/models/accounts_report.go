package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountsReport is the academy-wide receivables rollup for one month:
// one row per client (empty clients included), sorted largest debtor first,
// plus a totals row summing every column.
type AccountsReport struct {
	Month  string              `json:"month"`
	Rows   []AccountsReportRow `json:"rows"`
	Totals AccountsReportRow   `json:"totals"`
}

// AccountsReportRow is one client's month in the rollup. Closing balance is
// opening + fees - credits - payments.
type AccountsReportRow struct {
	ClientID       uuid.UUID       `json:"client_id,omitempty"`
	ClientName     string          `json:"client_name,omitempty"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	SessionCount   int             `json:"session_count"`
	FeeTotal       decimal.Decimal `json:"fee_total"`
	CreditTotal    decimal.Decimal `json:"credit_total"`
	PaymentTotal   decimal.Decimal `json:"payment_total"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}
