package services

import (
	"time"

	"courtside/internal/models"

	"github.com/google/uuid"
)

// StatementServiceInterface produces statements from the billing core
type StatementServiceInterface interface {
	// GetStatement builds the month's statement for a client. A nil playerID
	// means family scope; otherwise the statement covers just that player.
	GetStatement(clientID uuid.UUID, month string, playerID *uuid.UUID) (*models.Statement, error)
}

// AccountsServiceInterface produces the monthly receivables rollup
type AccountsServiceInterface interface {
	// GetAccountsReport builds the per-client receivables rollup for a month,
	// optionally filtered by a case-insensitive client name substring.
	GetAccountsReport(month, nameFilter string) (*models.AccountsReport, error)
}

// AnalyticsServiceInterface serves the dashboard aggregations
type AnalyticsServiceInterface interface {
	GetRevenueTrend(fromMonth, toMonth string) ([]models.RevenueTrendPoint, error)
	GetSessionMix(month string) ([]models.SessionMixItem, error)
	GetClientHealth() (*models.ClientHealth, error)
	GetPeakHours(fromMonth, toMonth string) ([]models.PeakHourCell, error)
}

// ClientUpdate carries the mutable client profile fields
type ClientUpdate struct {
	Name   string
	Email  string
	Phone  string
	Status string
	Notes  string
}

// DuplicateGroup is a set of clients sharing a normalized name
type DuplicateGroup struct {
	NormalizedName string          `json:"normalized_name"`
	Clients        []models.Client `json:"clients"`
}

// MergeResult reports what a client merge moved
type MergeResult struct {
	TargetID       uuid.UUID `json:"target_id"`
	SourceID       uuid.UUID `json:"source_id"`
	PlayersMoved   int64     `json:"players_moved"`
	PaymentsMoved  int64     `json:"payments_moved"`
	SourceArchived bool      `json:"source_archived"`
}

// ClientServiceInterface defines client directory operations
type ClientServiceInterface interface {
	CreateClient(name, email, phone, status, notes string) (*models.Client, error)
	GetClient(id uuid.UUID) (*models.Client, error)
	ListClients(query, status string, offset, limit int) ([]models.Client, int64, error)
	UpdateClient(id uuid.UUID, update ClientUpdate) (*models.Client, error)
	DeleteClient(id uuid.UUID) error
	FindDuplicates() ([]DuplicateGroup, error)
	MergeClients(targetID, sourceID uuid.UUID) (*MergeResult, error)

	CreatePlayer(name string, clientID *uuid.UUID, birthYear int, level, notes string) (*models.Player, error)
	GetPlayer(id uuid.UUID) (*models.Player, error)
	ListPlayers(offset, limit int) ([]models.Player, int64, error)
	UpdatePlayer(player *models.Player) error
	DeletePlayer(id uuid.UUID) error
}

// SessionInput carries the fields needed to schedule or reschedule a session
type SessionInput struct {
	Date      string
	StartTime string
	EndTime   string
	Type      string
	Location  string
	Price     string
	Notes     string
	PlayerIDs []uuid.UUID
}

// ScheduleServiceInterface manages training sessions and day events
type ScheduleServiceInterface interface {
	CreateSession(input SessionInput) (*models.TrainingSession, error)
	GetSession(id uuid.UUID) (*models.TrainingSession, error)
	ListSessions(startDate, endDate string, offset, limit int) ([]models.TrainingSession, int64, error)
	UpdateSession(id uuid.UUID, input SessionInput) (*models.TrainingSession, error)
	SetSessionCancelled(id uuid.UUID, cancelled bool) error
	DeleteSession(id uuid.UUID) error

	RecordDayEvent(date, kind, note string) (*models.DayEvent, error)
	ListDayEvents(month string) ([]models.DayEvent, error)
	DeleteDayEvent(id uuid.UUID) error
}

// PaymentInput carries the fields needed to record or amend a payment
type PaymentInput struct {
	ClientID  uuid.UUID
	Date      string
	Amount    string
	Reference string
	PlayerID  *uuid.UUID
	ProofURL  string
}

// PaymentServiceInterface manages received payments
type PaymentServiceInterface interface {
	RecordPayment(input PaymentInput) (*models.Payment, error)
	GetPayment(id uuid.UUID) (*models.Payment, error)
	ListPayments(clientID *uuid.UUID, offset, limit int) ([]models.Payment, int64, error)
	UpdatePayment(id uuid.UUID, input PaymentInput) (*models.Payment, error)
	DeletePayment(id uuid.UUID) error
}

// SeedSummary reports what the demo data generator created
type SeedSummary struct {
	Clients   int `json:"clients"`
	Players   int `json:"players"`
	Sessions  int `json:"sessions"`
	Payments  int `json:"payments"`
	DayEvents int `json:"day_events"`
}

// DemoDataServiceInterface seeds realistic demo data for development
type DemoDataServiceInterface interface {
	Seed(months int) (*SeedSummary, error)
}

// MetricsRecorderInterface abstracts the metrics backend from services
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
