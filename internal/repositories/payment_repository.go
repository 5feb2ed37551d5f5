package repositories

import (
	"errors"
	"fmt"

	"courtside/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

// paymentRepository implements PaymentRepositoryInterface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepositoryInterface {
	return &paymentRepository{
		db: db,
	}
}

// Create creates a new payment
func (r *paymentRepository) Create(payment *models.Payment) error {
	if err := r.db.Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetByID retrieves a payment by ID
func (r *paymentRepository) GetByID(id uuid.UUID) (*models.Payment, error) {
	payment := &models.Payment{ID: id}
	if err := r.db.First(payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}

// GetByClientID retrieves a client's payments with pagination
func (r *paymentRepository) GetByClientID(clientID uuid.UUID, offset, limit int) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	query := r.db.Model(&models.Payment{}).Where("client_id = ?", clientID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments for client: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("date DESC, created_at DESC").Find(&payments).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get payments for client: %w", err)
	}

	return payments, total, nil
}

// GetAll retrieves all payments with pagination
func (r *paymentRepository) GetAll(offset, limit int) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	if err := r.db.Model(&models.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	if err := r.db.Offset(offset).Limit(limit).
		Order("date DESC, created_at DESC").Find(&payments).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get payments: %w", err)
	}

	return payments, total, nil
}

// Update updates a payment
func (r *paymentRepository) Update(payment *models.Payment) error {
	result := r.db.Model(payment).Updates(map[string]interface{}{
		"date":      payment.Date,
		"amount":    payment.Amount,
		"reference": payment.Reference,
		"player_id": payment.PlayerID,
		"proof_url": payment.ProofURL,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// ReassignToClient moves every payment of one client to another, used when
// merging duplicate client records. Returns the number of payments moved.
func (r *paymentRepository) ReassignToClient(fromClientID, toClientID uuid.UUID) (int64, error) {
	result := r.db.Model(&models.Payment{}).
		Where("client_id = ?", fromClientID).
		Update("client_id", toClientID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to reassign payments: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Delete soft-deletes a payment
func (r *paymentRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Payment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
