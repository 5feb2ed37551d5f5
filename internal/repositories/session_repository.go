package repositories

import (
	"errors"
	"fmt"

	"courtside/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("training session not found")

// sessionRepository implements SessionRepositoryInterface
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new training session repository
func NewSessionRepository(db *gorm.DB) SessionRepositoryInterface {
	return &sessionRepository{
		db: db,
	}
}

// Create creates a session and its participant rows in one transaction
func (r *sessionRepository) Create(session *models.TrainingSession, playerIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		for _, playerID := range playerIDs {
			participant := models.SessionParticipant{
				SessionID: session.ID,
				PlayerID:  playerID,
			}
			if err := tx.Create(&participant).Error; err != nil {
				return fmt.Errorf("failed to add session participant: %w", err)
			}
			session.Participants = append(session.Participants, participant)
		}
		return nil
	})
}

// GetByID retrieves a session with its participants preloaded
func (r *sessionRepository) GetByID(id uuid.UUID) (*models.TrainingSession, error) {
	var session models.TrainingSession
	if err := r.db.Preload("Participants").
		First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// GetByDateRange retrieves sessions within an inclusive date range.
// Dates are zero-padded ISO strings so string comparison is chronological.
func (r *sessionRepository) GetByDateRange(startDate, endDate string, offset, limit int) ([]models.TrainingSession, int64, error) {
	var sessions []models.TrainingSession
	var total int64

	query := r.db.Model(&models.TrainingSession{}).
		Where("date >= ? AND date <= ?", startDate, endDate)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions in range: %w", err)
	}

	if err := query.Preload("Participants").
		Offset(offset).Limit(limit).
		Order("date ASC, start_time ASC").Find(&sessions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get sessions in range: %w", err)
	}

	return sessions, total, nil
}

// GetAll retrieves all sessions with pagination
func (r *sessionRepository) GetAll(offset, limit int) ([]models.TrainingSession, int64, error) {
	var sessions []models.TrainingSession
	var total int64

	if err := r.db.Model(&models.TrainingSession{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	if err := r.db.Preload("Participants").
		Offset(offset).Limit(limit).
		Order("date ASC, start_time ASC").Find(&sessions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get sessions: %w", err)
	}

	return sessions, total, nil
}

// GetAllWithParticipants retrieves every session with participants, used to
// assemble billing snapshots
func (r *sessionRepository) GetAllWithParticipants() ([]models.TrainingSession, error) {
	var sessions []models.TrainingSession
	if err := r.db.Preload("Participants").
		Order("date ASC, start_time ASC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to get sessions with participants: %w", err)
	}
	return sessions, nil
}

// Update updates a session's own fields; participants change via ReplaceParticipants
func (r *sessionRepository) Update(session *models.TrainingSession) error {
	result := r.db.Model(session).Updates(map[string]interface{}{
		"date":       session.Date,
		"start_time": session.StartTime,
		"end_time":   session.EndTime,
		"type":       session.Type,
		"location":   session.Location,
		"price":      session.Price,
		"cancelled":  session.Cancelled,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// ReplaceParticipants swaps the session's participant set atomically
func (r *sessionRepository) ReplaceParticipants(sessionID uuid.UUID, playerIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var session models.TrainingSession
		if err := tx.First(&session, "id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("failed to get session: %w", err)
		}

		if err := tx.Where("session_id = ?", sessionID).
			Delete(&models.SessionParticipant{}).Error; err != nil {
			return fmt.Errorf("failed to clear session participants: %w", err)
		}

		for _, playerID := range playerIDs {
			participant := models.SessionParticipant{
				SessionID: sessionID,
				PlayerID:  playerID,
			}
			if err := tx.Create(&participant).Error; err != nil {
				return fmt.Errorf("failed to add session participant: %w", err)
			}
		}
		return nil
	})
}

// SetCancelled flags or unflags a coach cancellation
func (r *sessionRepository) SetCancelled(id uuid.UUID, cancelled bool) error {
	result := r.db.Model(&models.TrainingSession{}).
		Where("id = ?", id).
		Update("cancelled", cancelled)
	if result.Error != nil {
		return fmt.Errorf("failed to update session cancellation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// Delete soft-deletes a session and removes its participant rows
func (r *sessionRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.TrainingSession{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete session: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrSessionNotFound
		}
		if err := tx.Where("session_id = ?", id).
			Delete(&models.SessionParticipant{}).Error; err != nil {
			return fmt.Errorf("failed to delete session participants: %w", err)
		}
		return nil
	})
}
