package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPlayerNameRequired = errors.New("player name is required")

// Player is an athlete profile. ClientID is a weak reference to the owning
// billing account; an unlinked player never appears on a statement.
type Player struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	ClientID  *uuid.UUID     `gorm:"type:uuid;index" json:"client_id,omitempty"`
	BirthYear int            `json:"birth_year,omitempty"`
	Level     string         `gorm:"type:varchar(50)" json:"level,omitempty"`
	Notes     string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook for Player
func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return p.Validate()
}

// Validate validates the player fields
func (p *Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrPlayerNameRequired
	}
	return nil
}

// BelongsTo reports whether the player is linked to the given client
func (p *Player) BelongsTo(clientID uuid.UUID) bool {
	return p.ClientID != nil && *p.ClientID == clientID
}

// TableName returns the table name for Player
func (p *Player) TableName() string {
	return "players"
}
