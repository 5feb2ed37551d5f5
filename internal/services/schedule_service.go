package services

import (
	"errors"
	"fmt"
	"log/slog"

	"courtside/internal/models"
	"courtside/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDate        = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTime        = errors.New("time must be formatted as HH:MM")
	ErrInvalidSessionType = errors.New("invalid session type")
	ErrInvalidPrice       = errors.New("price must be a non-negative amount")
	ErrUnknownParticipant = errors.New("participant player does not exist")
	ErrInvalidDayEvent    = errors.New("invalid day event kind")
)

type scheduleService struct {
	sessionRepo  repositories.SessionRepositoryInterface
	playerRepo   repositories.PlayerRepositoryInterface
	dayEventRepo repositories.DayEventRepositoryInterface
	metrics      MetricsRecorderInterface
}

func NewScheduleService(
	sessionRepo repositories.SessionRepositoryInterface,
	playerRepo repositories.PlayerRepositoryInterface,
	dayEventRepo repositories.DayEventRepositoryInterface,
	metrics MetricsRecorderInterface,
) ScheduleServiceInterface {
	return &scheduleService{
		sessionRepo:  sessionRepo,
		playerRepo:   playerRepo,
		dayEventRepo: dayEventRepo,
		metrics:      metrics,
	}
}

func (s *scheduleService) CreateSession(input SessionInput) (*models.TrainingSession, error) {
	price, err := s.validateSessionInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.validateParticipants(input.PlayerIDs); err != nil {
		return nil, err
	}

	session := &models.TrainingSession{
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Type:      input.Type,
		Location:  input.Location,
		Price:     price,
		Notes:     input.Notes,
	}

	if err := s.sessionRepo.Create(session, input.PlayerIDs); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("session_scheduled", map[string]string{
		"type": session.Type,
	})
	slog.Info("session scheduled",
		"session_id", session.ID,
		"date", session.Date,
		"type", session.Type,
		"participants", len(input.PlayerIDs))

	return session, nil
}

func (s *scheduleService) GetSession(id uuid.UUID) (*models.TrainingSession, error) {
	session, err := s.sessionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *scheduleService) ListSessions(startDate, endDate string, offset, limit int) ([]models.TrainingSession, int64, error) {
	if startDate == "" && endDate == "" {
		return s.sessionRepo.GetAll(offset, limit)
	}
	if !models.IsValidDate(startDate) || !models.IsValidDate(endDate) {
		return nil, 0, ErrInvalidDate
	}
	return s.sessionRepo.GetByDateRange(startDate, endDate, offset, limit)
}

func (s *scheduleService) UpdateSession(id uuid.UUID, input SessionInput) (*models.TrainingSession, error) {
	price, err := s.validateSessionInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.validateParticipants(input.PlayerIDs); err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	session.Date = input.Date
	session.StartTime = input.StartTime
	session.EndTime = input.EndTime
	session.Type = input.Type
	session.Location = input.Location
	session.Price = price
	session.Notes = input.Notes

	if err := s.sessionRepo.Update(session); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.ReplaceParticipants(id, input.PlayerIDs); err != nil {
		return nil, err
	}

	slog.Info("session updated", "session_id", id)
	return s.sessionRepo.GetByID(id)
}

// SetSessionCancelled flips the coach-cancellation flag. The billing core
// turns a cancelled session's charges into credits on the next statement.
func (s *scheduleService) SetSessionCancelled(id uuid.UUID, cancelled bool) error {
	if err := s.sessionRepo.SetCancelled(id, cancelled); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.metrics.IncrementCounter("session_cancellation_changed", map[string]string{
		"cancelled": fmt.Sprintf("%t", cancelled),
	})
	slog.Info("session cancellation changed",
		"session_id", id,
		"cancelled", cancelled)
	return nil
}

func (s *scheduleService) DeleteSession(id uuid.UUID) error {
	if err := s.sessionRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return ErrNotFound
		}
		return err
	}
	slog.Info("session deleted", "session_id", id)
	return nil
}

func (s *scheduleService) RecordDayEvent(date, kind, note string) (*models.DayEvent, error) {
	if !models.IsValidDate(date) {
		return nil, ErrInvalidDate
	}
	if !models.IsValidDayEventKind(kind) {
		return nil, ErrInvalidDayEvent
	}

	event := &models.DayEvent{
		Date: date,
		Kind: kind,
		Note: note,
	}

	if err := s.dayEventRepo.Create(event); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("day_event_recorded", map[string]string{
		"kind": kind,
	})
	slog.Info("day event recorded",
		"date", date,
		"kind", kind)

	return event, nil
}

func (s *scheduleService) ListDayEvents(month string) ([]models.DayEvent, error) {
	if !models.IsValidMonth(month) {
		return nil, ErrInvalidMonth
	}
	return s.dayEventRepo.GetByMonth(month)
}

func (s *scheduleService) DeleteDayEvent(id uuid.UUID) error {
	if err := s.dayEventRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrDayEventNotFound) {
			return ErrNotFound
		}
		return err
	}
	slog.Info("day event deleted", "day_event_id", id)
	return nil
}

func (s *scheduleService) validateSessionInput(input SessionInput) (decimal.Decimal, error) {
	if !models.IsValidDate(input.Date) {
		return decimal.Zero, ErrInvalidDate
	}
	if !models.IsValidTimeOfDay(input.StartTime) || !models.IsValidTimeOfDay(input.EndTime) {
		return decimal.Zero, ErrInvalidTime
	}
	if !models.IsValidSessionType(input.Type) {
		return decimal.Zero, ErrInvalidSessionType
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil || price.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return price, nil
}

func (s *scheduleService) validateParticipants(playerIDs []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(playerIDs))
	for _, playerID := range playerIDs {
		if _, dup := seen[playerID]; dup {
			return fmt.Errorf("%w: duplicate participant %s", ErrUnknownParticipant, playerID)
		}
		seen[playerID] = struct{}{}

		if _, err := s.playerRepo.GetByID(playerID); err != nil {
			if errors.Is(err, repositories.ErrPlayerNotFound) {
				return fmt.Errorf("%w: %s", ErrUnknownParticipant, playerID)
			}
			return err
		}
	}
	return nil
}
