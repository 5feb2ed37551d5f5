package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
	ErrInvalidPaymentDate   = errors.New("payment date must be formatted as YYYY-MM-DD")
)

// Payment is money received from a client, always a credit against the
// client's balance. When PlayerID is set the payment is earmarked for that
// player; otherwise it is split evenly across the client's players when a
// per-player statement is produced.
type Payment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ClientID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
	Date      string          `gorm:"type:varchar(10);not null;index" json:"date"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Reference string          `gorm:"type:varchar(255)" json:"reference,omitempty"`
	PlayerID  *uuid.UUID      `gorm:"type:uuid" json:"player_id,omitempty"`
	ProofURL  string          `gorm:"type:text" json:"proof_url,omitempty"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate hook for Payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return p.Validate()
}

// Validate validates the payment fields
func (p *Payment) Validate() error {
	if p.ClientID == uuid.Nil {
		return errors.New("payment client ID is required")
	}
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPaymentAmount
	}
	if !IsValidDate(p.Date) {
		return ErrInvalidPaymentDate
	}
	return nil
}

// IsEarmarked reports whether the payment is assigned to a single player
func (p *Payment) IsEarmarked() bool {
	return p.PlayerID != nil && *p.PlayerID != uuid.Nil
}

// TableName returns the table name for Payment
func (p *Payment) TableName() string {
	return "payments"
}
