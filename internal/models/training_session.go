package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	SessionTypePrivate = "private"
	SessionTypeSemi    = "semi"
	SessionTypeGroup   = "group"

	// DateLayout is the canonical calendar-date format. All date columns are
	// zero-padded ISO dates so lexicographic order equals chronological order.
	DateLayout = "2006-01-02"
	// TimeLayout is the canonical local time-of-day format.
	TimeLayout = "15:04"
	// MonthLayout is the statement month selector format.
	MonthLayout = "2006-01"
)

var (
	ErrInvalidSessionType = errors.New("invalid session type")
	ErrInvalidSessionDate = errors.New("session date must be formatted as YYYY-MM-DD")
	ErrInvalidSessionTime = errors.New("session time must be formatted as HH:MM")

	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// TrainingSession is a scheduled training slot. Price is the per-participant-
// slot rate: a client with two players in the session is charged twice the
// price. Cancelled marks a coach cancellation, which credits every involved
// participant slot back to its client.
type TrainingSession struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Date         string               `gorm:"type:varchar(10);not null;index" json:"date"`
	StartTime    string               `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime      string               `gorm:"type:varchar(5);not null" json:"end_time"`
	Type         string               `gorm:"type:varchar(20);not null" json:"type"`
	Location     string               `gorm:"type:varchar(255)" json:"location,omitempty"`
	Price        decimal.Decimal      `gorm:"type:decimal(15,2);not null" json:"price"`
	Cancelled    bool                 `gorm:"not null;default:false" json:"cancelled"`
	Notes        string               `gorm:"type:text" json:"notes,omitempty"`
	Participants []SessionParticipant `gorm:"foreignKey:SessionID" json:"participants,omitempty"`
	CreatedAt    time.Time            `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time            `gorm:"not null" json:"updated_at"`
	DeletedAt    gorm.DeletedAt       `gorm:"index" json:"-"`
}

// SessionParticipant links a player to a training session. The player
// reference is weak: a row may outlive the player record and is then
// ignored for name lookups while still occupying a participant slot.
type SessionParticipant struct {
	SessionID uuid.UUID `gorm:"type:uuid;primary_key" json:"session_id"`
	PlayerID  uuid.UUID `gorm:"type:uuid;primary_key" json:"player_id"`
}

// BeforeCreate hook for TrainingSession
func (s *TrainingSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return s.Validate()
}

// BeforeUpdate hook for TrainingSession
func (s *TrainingSession) BeforeUpdate(tx *gorm.DB) error {
	return s.Validate()
}

// Validate validates the session fields
func (s *TrainingSession) Validate() error {
	if !IsValidSessionType(s.Type) {
		return ErrInvalidSessionType
	}
	if !IsValidDate(s.Date) {
		return ErrInvalidSessionDate
	}
	if !IsValidTimeOfDay(s.StartTime) || !IsValidTimeOfDay(s.EndTime) {
		return ErrInvalidSessionTime
	}
	return nil
}

// ParticipantIDs returns the ids of every participant slot, dangling or not
func (s *TrainingSession) ParticipantIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.Participants))
	for _, p := range s.Participants {
		ids = append(ids, p.PlayerID)
	}
	return ids
}

// TimeRange returns the human-readable session time range, e.g. "16:00-17:00"
func (s *TrainingSession) TimeRange() string {
	return s.StartTime + "-" + s.EndTime
}

// Month returns the "YYYY-MM" month the session falls in
func (s *TrainingSession) Month() string {
	if len(s.Date) < 7 {
		return ""
	}
	return s.Date[:7]
}

// TableName returns the table name for TrainingSession
func (s *TrainingSession) TableName() string {
	return "training_sessions"
}

// TableName returns the table name for SessionParticipant
func (p *SessionParticipant) TableName() string {
	return "session_participants"
}

// IsValidSessionType checks if the session type is valid
func IsValidSessionType(sessionType string) bool {
	switch sessionType {
	case SessionTypePrivate, SessionTypeSemi, SessionTypeGroup:
		return true
	default:
		return false
	}
}

// IsValidDate checks that a date is a real, zero-padded ISO calendar date
func IsValidDate(date string) bool {
	if !dateRe.MatchString(date) {
		return false
	}
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// IsValidTimeOfDay checks that a time is a zero-padded HH:MM time of day
func IsValidTimeOfDay(value string) bool {
	if !timeRe.MatchString(value) {
		return false
	}
	_, err := time.Parse(TimeLayout, value)
	return err == nil
}

// IsValidMonth checks that a month selector is a zero-padded "YYYY-MM" value
func IsValidMonth(month string) bool {
	_, err := time.Parse(MonthLayout, month)
	return err == nil && len(month) == 7
}
