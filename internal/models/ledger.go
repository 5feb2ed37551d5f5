package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	LedgerEntryFee     = "fee"
	LedgerEntryPayment = "payment"
	LedgerEntryCredit  = "credit"
)

// LedgerEntry is one derived debit-or-credit line in a client's chronological
// ledger. Entries are never persisted; they are recomputed from sessions and
// payments on every request. Exactly one of Debit and Credit is nonzero.
type LedgerEntry struct {
	Date        string          `json:"date"`
	SortKey     int64           `json:"-"`
	PlayerID    uuid.UUID       `json:"player_id"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	ProofURL    string          `json:"proof_url,omitempty"`
}

// Delta returns the entry's signed effect on the balance (debit minus credit)
func (e *LedgerEntry) Delta() decimal.Decimal {
	return e.Debit.Sub(e.Credit)
}

// InMonth reports whether the entry falls inside the "YYYY-MM" month.
// Dates are zero-padded ISO dates, so a prefix compare is chronological.
func (e *LedgerEntry) InMonth(month string) bool {
	return len(e.Date) >= 7 && e.Date[:7] == month
}

// Before reports whether the entry is strictly dated before the month's
// first day.
func (e *LedgerEntry) Before(month string) bool {
	return e.Date < month+"-01"
}
