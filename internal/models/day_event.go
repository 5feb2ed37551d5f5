package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DayEventKindRain    = "rain"
	DayEventKindClosure = "closure"
)

var ErrInvalidDayEventKind = errors.New("invalid day event kind")

// DayEvent marks a calendar day as rained out or closed. Every session on
// such a day is voided: no charge and no credit is ever produced for it.
type DayEvent struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Date      string         `gorm:"type:varchar(10);not null;index" json:"date"`
	Kind      string         `gorm:"type:varchar(20);not null" json:"kind"`
	Note      string         `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook for DayEvent
func (e *DayEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return e.Validate()
}

// Validate validates the day event fields
func (e *DayEvent) Validate() error {
	if !IsValidDayEventKind(e.Kind) {
		return ErrInvalidDayEventKind
	}
	if !IsValidDate(e.Date) {
		return errors.New("day event date must be formatted as YYYY-MM-DD")
	}
	return nil
}

// VoidsSessions reports whether sessions on this day are excluded from billing
func (e *DayEvent) VoidsSessions() bool {
	return e.Kind == DayEventKindRain || e.Kind == DayEventKindClosure
}

// TableName returns the table name for DayEvent
func (e *DayEvent) TableName() string {
	return "day_events"
}

// IsValidDayEventKind checks if the day event kind is valid
func IsValidDayEventKind(kind string) bool {
	switch kind {
	case DayEventKindRain, DayEventKindClosure:
		return true
	default:
		return false
	}
}
