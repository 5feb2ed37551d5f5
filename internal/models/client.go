package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
	ClientStatusLead     = "lead"
)

var (
	ErrInvalidClientStatus = errors.New("invalid client status")
	ErrClientNameRequired  = errors.New("client name is required")
)

// Client is a billing account, typically a parent or guardian. Players link
// to a client for billing; payments are owned by the client.
type Client struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null;index" json:"name"`
	Email     string         `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone     string         `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Status    string         `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Notes     string         `gorm:"type:text" json:"notes,omitempty"`
	Payments  []Payment      `gorm:"foreignKey:ClientID" json:"payments,omitempty"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook for Client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = ClientStatusActive
	}
	return c.Validate()
}

// BeforeUpdate hook for Client
func (c *Client) BeforeUpdate(tx *gorm.DB) error {
	return c.Validate()
}

// Validate validates the client fields
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrClientNameRequired
	}
	if !IsValidClientStatus(c.Status) {
		return ErrInvalidClientStatus
	}
	return nil
}

// IsActive returns true if the client is an active billing account
func (c *Client) IsActive() bool {
	return c.Status == ClientStatusActive
}

// NormalizedName returns the client name lowered and whitespace-collapsed,
// used for duplicate detection before a manual merge.
func (c *Client) NormalizedName() string {
	return strings.Join(strings.Fields(strings.ToLower(c.Name)), " ")
}

// TableName returns the table name for Client
func (c *Client) TableName() string {
	return "clients"
}

// IsValidClientStatus checks if the client status is valid
func IsValidClientStatus(status string) bool {
	switch status {
	case ClientStatusActive, ClientStatusInactive, ClientStatusLead:
		return true
	default:
		return false
	}
}
