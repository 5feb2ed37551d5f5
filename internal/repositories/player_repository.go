package repositories

import (
	"errors"
	"fmt"

	"courtside/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPlayerNotFound = errors.New("player not found")

// playerRepository implements PlayerRepositoryInterface
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) PlayerRepositoryInterface {
	return &playerRepository{
		db: db,
	}
}

// Create creates a new player
func (r *playerRepository) Create(player *models.Player) error {
	if err := r.db.Create(player).Error; err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

// GetByID retrieves a player by ID
func (r *playerRepository) GetByID(id uuid.UUID) (*models.Player, error) {
	player := &models.Player{ID: id}
	if err := r.db.First(player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// GetByClientID retrieves all players linked to a client in roster order
func (r *playerRepository) GetByClientID(clientID uuid.UUID) ([]models.Player, error) {
	var players []models.Player
	if err := r.db.Where("client_id = ?", clientID).
		Order("created_at ASC").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to get players for client: %w", err)
	}
	return players, nil
}

// GetUnassigned retrieves players not linked to any client
func (r *playerRepository) GetUnassigned() ([]models.Player, error) {
	var players []models.Player
	if err := r.db.Where("client_id IS NULL").
		Order("created_at ASC").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to get unassigned players: %w", err)
	}
	return players, nil
}

// GetAll retrieves all players with pagination
func (r *playerRepository) GetAll(offset, limit int) ([]models.Player, int64, error) {
	var players []models.Player
	var total int64

	if err := r.db.Model(&models.Player{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count players: %w", err)
	}

	if err := r.db.Offset(offset).Limit(limit).
		Order("created_at ASC").Find(&players).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get players: %w", err)
	}

	return players, total, nil
}

// Update updates a player
func (r *playerRepository) Update(player *models.Player) error {
	result := r.db.Model(player).Updates(map[string]interface{}{
		"name":       player.Name,
		"client_id":  player.ClientID,
		"birth_year": player.BirthYear,
		"level":      player.Level,
		"notes":      player.Notes,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update player: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// ReassignToClient moves every player of one client to another, used when
// merging duplicate client records. Returns the number of players moved.
func (r *playerRepository) ReassignToClient(fromClientID, toClientID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Player{}).
		Where("client_id = ?", fromClientID).
		Update("client_id", toClientID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to reassign players: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Delete soft-deletes a player
func (r *playerRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Player{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete player: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}
