package repositories

import (
	"courtside/internal/models"

	"github.com/google/uuid"
)

// ClientFilters narrows client listing queries
type ClientFilters struct {
	Query  string // case-insensitive substring on name
	Status string
}

// ClientRepositoryInterface defines the contract for client repository operations
type ClientRepositoryInterface interface {
	Create(client *models.Client) error
	GetByID(id uuid.UUID) (*models.Client, error)
	GetByIDWithPayments(id uuid.UUID) (*models.Client, error)
	GetAll(offset, limit int) ([]models.Client, int64, error)
	GetAllWithFilters(filters ClientFilters, offset, limit int) ([]models.Client, int64, error)
	GetAllWithPayments() ([]models.Client, error)
	Update(client *models.Client) error
	Delete(id uuid.UUID) error
}

// PlayerRepositoryInterface defines the contract for player repository operations
type PlayerRepositoryInterface interface {
	Create(player *models.Player) error
	GetByID(id uuid.UUID) (*models.Player, error)
	GetByClientID(clientID uuid.UUID) ([]models.Player, error)
	GetUnassigned() ([]models.Player, error)
	GetAll(offset, limit int) ([]models.Player, int64, error)
	Update(player *models.Player) error
	ReassignToClient(fromClientID, toClientID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
}

// SessionRepositoryInterface defines the contract for training session repository operations
type SessionRepositoryInterface interface {
	Create(session *models.TrainingSession, playerIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.TrainingSession, error)
	GetByDateRange(startDate, endDate string, offset, limit int) ([]models.TrainingSession, int64, error)
	GetAll(offset, limit int) ([]models.TrainingSession, int64, error)
	GetAllWithParticipants() ([]models.TrainingSession, error)
	Update(session *models.TrainingSession) error
	ReplaceParticipants(sessionID uuid.UUID, playerIDs []uuid.UUID) error
	SetCancelled(id uuid.UUID, cancelled bool) error
	Delete(id uuid.UUID) error
}

// PaymentRepositoryInterface defines the contract for payment repository operations
type PaymentRepositoryInterface interface {
	Create(payment *models.Payment) error
	GetByID(id uuid.UUID) (*models.Payment, error)
	GetByClientID(clientID uuid.UUID, offset, limit int) ([]models.Payment, int64, error)
	GetAll(offset, limit int) ([]models.Payment, int64, error)
	Update(payment *models.Payment) error
	ReassignToClient(fromClientID, toClientID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
}

// DayEventRepositoryInterface defines the contract for day event repository operations
type DayEventRepositoryInterface interface {
	Create(event *models.DayEvent) error
	GetByID(id uuid.UUID) (*models.DayEvent, error)
	GetByDate(date string) (*models.DayEvent, error)
	GetByMonth(month string) ([]models.DayEvent, error)
	GetAll(offset, limit int) ([]models.DayEvent, int64, error)
	Update(event *models.DayEvent) error
	Delete(id uuid.UUID) error
}

// SnapshotRepositoryInterface loads a consistent in-memory snapshot of the
// records the billing core computes over
type SnapshotRepositoryInterface interface {
	Load() (*models.Snapshot, error)
}
