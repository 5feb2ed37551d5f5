package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"courtside/internal/billing"
	"courtside/internal/models"
	"courtside/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidMonth    = errors.New("month must be formatted as YYYY-MM")
	ErrNotFound        = errors.New("record not found")
	ErrPlayerNotLinked = errors.New("player does not belong to client")
)

type statementService struct {
	snapshotRepo repositories.SnapshotRepositoryInterface
	metrics      MetricsRecorderInterface
}

func NewStatementService(
	snapshotRepo repositories.SnapshotRepositoryInterface,
	metrics MetricsRecorderInterface,
) StatementServiceInterface {
	return &statementService{
		snapshotRepo: snapshotRepo,
		metrics:      metrics,
	}
}

func (s *statementService) GetStatement(clientID uuid.UUID, month string, playerID *uuid.UUID) (*models.Statement, error) {
	if !models.IsValidMonth(month) {
		return nil, ErrInvalidMonth
	}

	start := time.Now()

	snap, err := s.snapshotRepo.Load()
	if err != nil {
		slog.Error("failed to load snapshot for statement",
			"client_id", clientID,
			"error", err)
		return nil, fmt.Errorf("failed to load billing data: %w", err)
	}

	client := findClient(snap, clientID)
	if client == nil {
		slog.Warn("client not found for statement",
			"client_id", clientID)
		return nil, ErrNotFound
	}

	scope, err := s.resolveScope(client, playerID, snap)
	if err != nil {
		return nil, err
	}

	statement := billing.BuildStatement(client, scope, snap, month)

	s.metrics.IncrementCounter("statement_generated", map[string]string{
		"scope": statement.Scope,
	})
	s.metrics.RecordProcessingTime("statement_build", time.Since(start))

	slog.Info("statement generated",
		"client_id", clientID,
		"month", month,
		"scope", statement.Scope,
		"sections", len(statement.Sections))

	return &statement, nil
}

// resolveScope picks family or single-player scope, rejecting a player that
// is not linked to the client
func (s *statementService) resolveScope(client *models.Client, playerID *uuid.UUID, snap *models.Snapshot) (billing.Scope, error) {
	if playerID == nil {
		return billing.FamilyScope(), nil
	}

	for _, p := range snap.PlayersOf(client.ID) {
		if p.ID == *playerID {
			return billing.PlayerScope(*playerID), nil
		}
	}

	slog.Warn("statement requested for player outside client roster",
		"client_id", client.ID,
		"player_id", *playerID)
	return billing.Scope{}, ErrPlayerNotLinked
}

// findClient locates a client inside a loaded snapshot
func findClient(snap *models.Snapshot, clientID uuid.UUID) *models.Client {
	for i := range snap.Clients {
		if snap.Clients[i].ID == clientID {
			return &snap.Clients[i]
		}
	}
	return nil
}
