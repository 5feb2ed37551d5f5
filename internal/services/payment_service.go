package services

import (
	"errors"
	"log/slog"

	"courtside/internal/models"
	"courtside/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be a positive value with at most two decimals")

type paymentService struct {
	paymentRepo repositories.PaymentRepositoryInterface
	clientRepo  repositories.ClientRepositoryInterface
	playerRepo  repositories.PlayerRepositoryInterface
	metrics     MetricsRecorderInterface
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepositoryInterface,
	clientRepo repositories.ClientRepositoryInterface,
	playerRepo repositories.PlayerRepositoryInterface,
	metrics MetricsRecorderInterface,
) PaymentServiceInterface {
	return &paymentService{
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
		playerRepo:  playerRepo,
		metrics:     metrics,
	}
}

func (s *paymentService) RecordPayment(input PaymentInput) (*models.Payment, error) {
	amount, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.clientRepo.GetByID(input.ClientID); err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.validateEarmark(input.ClientID, input.PlayerID); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ClientID:  input.ClientID,
		Date:      input.Date,
		Amount:    amount,
		Reference: input.Reference,
		PlayerID:  input.PlayerID,
		ProofURL:  input.ProofURL,
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("payment_recorded", map[string]string{
		"earmarked": boolLabel(payment.IsEarmarked()),
	})
	s.metrics.RecordGauge("payment_amount", amount.InexactFloat64(), nil)

	slog.Info("payment recorded",
		"payment_id", payment.ID,
		"client_id", payment.ClientID,
		"date", payment.Date,
		"earmarked", payment.IsEarmarked())

	return payment, nil
}

func (s *paymentService) GetPayment(id uuid.UUID) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) ListPayments(clientID *uuid.UUID, offset, limit int) ([]models.Payment, int64, error) {
	if clientID != nil {
		return s.paymentRepo.GetByClientID(*clientID, offset, limit)
	}
	return s.paymentRepo.GetAll(offset, limit)
}

func (s *paymentService) UpdatePayment(id uuid.UUID, input PaymentInput) (*models.Payment, error) {
	amount, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.validateEarmark(payment.ClientID, input.PlayerID); err != nil {
		return nil, err
	}

	payment.Date = input.Date
	payment.Amount = amount
	payment.Reference = input.Reference
	payment.PlayerID = input.PlayerID
	payment.ProofURL = input.ProofURL

	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, err
	}

	slog.Info("payment updated", "payment_id", id)
	return payment, nil
}

func (s *paymentService) DeletePayment(id uuid.UUID) error {
	if err := s.paymentRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return ErrNotFound
		}
		return err
	}
	slog.Info("payment deleted", "payment_id", id)
	return nil
}

func (s *paymentService) validateInput(input PaymentInput) (decimal.Decimal, error) {
	if !models.IsValidDate(input.Date) {
		return decimal.Zero, ErrInvalidDate
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil || !amount.IsPositive() || amount.Exponent() < -2 {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// validateEarmark checks that an earmark target is one of the client's players
func (s *paymentService) validateEarmark(clientID uuid.UUID, playerID *uuid.UUID) error {
	if playerID == nil {
		return nil
	}

	player, err := s.playerRepo.GetByID(*playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotLinked
		}
		return err
	}
	if !player.BelongsTo(clientID) {
		return ErrPlayerNotLinked
	}
	return nil
}

func boolLabel(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
