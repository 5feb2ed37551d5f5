package repositories

import (
	"errors"
	"fmt"
	"strings"

	"courtside/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrClientNotFound = errors.New("client not found")

// clientRepository implements ClientRepositoryInterface
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) ClientRepositoryInterface {
	return &clientRepository{
		db: db,
	}
}

// Create creates a new client
func (r *clientRepository) Create(client *models.Client) error {
	if err := r.db.Create(client).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// GetByID retrieves a client by ID
func (r *clientRepository) GetByID(id uuid.UUID) (*models.Client, error) {
	client := &models.Client{ID: id}
	if err := r.db.First(client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

// GetByIDWithPayments retrieves a client with its payment history preloaded.
// Statement and rollup computations need the full payment list, not a page.
func (r *clientRepository) GetByIDWithPayments(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := r.db.Preload("Payments", func(db *gorm.DB) *gorm.DB {
		return db.Order("payments.date ASC, payments.created_at ASC")
	}).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client with payments: %w", err)
	}
	return &client, nil
}

// GetAll retrieves all clients with pagination
func (r *clientRepository) GetAll(offset, limit int) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	if err := r.db.Model(&models.Client{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	if err := r.db.Offset(offset).Limit(limit).
		Order("name ASC").Find(&clients).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get clients: %w", err)
	}

	return clients, total, nil
}

// GetAllWithFilters retrieves clients matching the filters with pagination
func (r *clientRepository) GetAllWithFilters(filters ClientFilters, offset, limit int) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	query := r.db.Model(&models.Client{})

	if filters.Query != "" {
		pattern := "%" + strings.ToLower(filters.Query) + "%"
		query = query.Where("LOWER(name) LIKE ?", pattern)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered clients: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("name ASC").Find(&clients).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered clients: %w", err)
	}

	return clients, total, nil
}

// GetAllWithPayments retrieves every client with payment history, used to
// assemble billing snapshots
func (r *clientRepository) GetAllWithPayments() ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.Preload("Payments", func(db *gorm.DB) *gorm.DB {
		return db.Order("payments.date ASC, payments.created_at ASC")
	}).Order("name ASC").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to get clients with payments: %w", err)
	}
	return clients, nil
}

// Update updates a client
func (r *clientRepository) Update(client *models.Client) error {
	result := r.db.Model(client).Updates(map[string]interface{}{
		"name":   client.Name,
		"email":  client.Email,
		"phone":  client.Phone,
		"status": client.Status,
		"notes":  client.Notes,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

// Delete soft-deletes a client
func (r *clientRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Client{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
