package repositories

import (
	"errors"
	"fmt"

	"courtside/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDayEventNotFound  = errors.New("day event not found")
	ErrDayEventDuplicate = errors.New("day event already exists for date")
)

// dayEventRepository implements DayEventRepositoryInterface
type dayEventRepository struct {
	db *gorm.DB
}

// NewDayEventRepository creates a new day event repository
func NewDayEventRepository(db *gorm.DB) DayEventRepositoryInterface {
	return &dayEventRepository{
		db: db,
	}
}

// Create creates a new day event. At most one event exists per calendar day.
func (r *dayEventRepository) Create(event *models.DayEvent) error {
	var count int64
	if err := r.db.Model(&models.DayEvent{}).
		Where("date = ?", event.Date).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check day event date: %w", err)
	}
	if count > 0 {
		return ErrDayEventDuplicate
	}

	if err := r.db.Create(event).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDayEventDuplicate
		}
		return fmt.Errorf("failed to create day event: %w", err)
	}
	return nil
}

// GetByID retrieves a day event by ID
func (r *dayEventRepository) GetByID(id uuid.UUID) (*models.DayEvent, error) {
	event := &models.DayEvent{ID: id}
	if err := r.db.First(event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDayEventNotFound
		}
		return nil, fmt.Errorf("failed to get day event: %w", err)
	}
	return event, nil
}

// GetByDate retrieves the day event for a calendar date, if any
func (r *dayEventRepository) GetByDate(date string) (*models.DayEvent, error) {
	var event models.DayEvent
	if err := r.db.Where("date = ?", date).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDayEventNotFound
		}
		return nil, fmt.Errorf("failed to get day event by date: %w", err)
	}
	return &event, nil
}

// GetByMonth retrieves all day events within a "YYYY-MM" month
func (r *dayEventRepository) GetByMonth(month string) ([]models.DayEvent, error) {
	var events []models.DayEvent
	if err := r.db.Where("date LIKE ?", month+"-%").
		Order("date ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to get day events for month: %w", err)
	}
	return events, nil
}

// GetAll retrieves all day events with pagination
func (r *dayEventRepository) GetAll(offset, limit int) ([]models.DayEvent, int64, error) {
	var events []models.DayEvent
	var total int64

	if err := r.db.Model(&models.DayEvent{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count day events: %w", err)
	}

	if err := r.db.Offset(offset).Limit(limit).
		Order("date ASC").Find(&events).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get day events: %w", err)
	}

	return events, total, nil
}

// Update updates a day event
func (r *dayEventRepository) Update(event *models.DayEvent) error {
	result := r.db.Model(event).Updates(map[string]interface{}{
		"date": event.Date,
		"kind": event.Kind,
		"note": event.Note,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update day event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDayEventNotFound
	}
	return nil
}

// Delete soft-deletes a day event
func (r *dayEventRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.DayEvent{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete day event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDayEventNotFound
	}
	return nil
}
