package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"courtside/internal/models"
	"courtside/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMergeSameClient = errors.New("cannot merge a client into itself")
	ErrInvalidStatus   = errors.New("invalid client status")
)

type clientService struct {
	db          *gorm.DB
	clientRepo  repositories.ClientRepositoryInterface
	playerRepo  repositories.PlayerRepositoryInterface
	paymentRepo repositories.PaymentRepositoryInterface
	metrics     MetricsRecorderInterface
}

func NewClientService(
	db *gorm.DB,
	clientRepo repositories.ClientRepositoryInterface,
	playerRepo repositories.PlayerRepositoryInterface,
	paymentRepo repositories.PaymentRepositoryInterface,
	metrics MetricsRecorderInterface,
) ClientServiceInterface {
	return &clientService{
		db:          db,
		clientRepo:  clientRepo,
		playerRepo:  playerRepo,
		paymentRepo: paymentRepo,
		metrics:     metrics,
	}
}

func (s *clientService) CreateClient(name, email, phone, status, notes string) (*models.Client, error) {
	if status != "" && !models.IsValidClientStatus(status) {
		return nil, ErrInvalidStatus
	}

	client := &models.Client{
		Name:   strings.TrimSpace(name),
		Email:  strings.TrimSpace(email),
		Phone:  strings.TrimSpace(phone),
		Status: status,
		Notes:  notes,
	}

	if err := s.clientRepo.Create(client); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("client_created", nil)
	slog.Info("client created",
		"client_id", client.ID,
		"status", client.Status)

	return client, nil
}

func (s *clientService) GetClient(id uuid.UUID) (*models.Client, error) {
	client, err := s.clientRepo.GetByIDWithPayments(id)
	if err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(query, status string, offset, limit int) ([]models.Client, int64, error) {
	if status != "" && !models.IsValidClientStatus(status) {
		return nil, 0, ErrInvalidStatus
	}
	return s.clientRepo.GetAllWithFilters(repositories.ClientFilters{
		Query:  query,
		Status: status,
	}, offset, limit)
}

func (s *clientService) UpdateClient(id uuid.UUID, update ClientUpdate) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if update.Status != "" && !models.IsValidClientStatus(update.Status) {
		return nil, ErrInvalidStatus
	}

	if update.Name != "" {
		client.Name = strings.TrimSpace(update.Name)
	}
	client.Email = strings.TrimSpace(update.Email)
	client.Phone = strings.TrimSpace(update.Phone)
	if update.Status != "" {
		client.Status = update.Status
	}
	client.Notes = update.Notes

	if err := s.clientRepo.Update(client); err != nil {
		return nil, err
	}

	slog.Info("client updated", "client_id", client.ID)
	return client, nil
}

func (s *clientService) DeleteClient(id uuid.UUID) error {
	if err := s.clientRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return ErrNotFound
		}
		return err
	}
	slog.Info("client deleted", "client_id", id)
	return nil
}

// FindDuplicates groups clients whose normalized names collide, the usual
// result of the same parent being captured twice
func (s *clientService) FindDuplicates() ([]DuplicateGroup, error) {
	clients, err := s.clientRepo.GetAllWithPayments()
	if err != nil {
		return nil, err
	}

	byName := map[string][]models.Client{}
	for _, c := range clients {
		key := c.NormalizedName()
		byName[key] = append(byName[key], c)
	}

	var groups []DuplicateGroup
	for name, group := range byName {
		if len(group) > 1 {
			groups = append(groups, DuplicateGroup{
				NormalizedName: name,
				Clients:        group,
			})
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].NormalizedName < groups[j].NormalizedName
	})

	return groups, nil
}

// MergeClients folds the source client into the target: players and payments
// move to the target, the source is archived. Runs in one transaction so a
// failure leaves both clients untouched.
func (s *clientService) MergeClients(targetID, sourceID uuid.UUID) (*MergeResult, error) {
	if targetID == sourceID {
		return nil, ErrMergeSameClient
	}

	var result MergeResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		clients := repositories.NewClientRepository(tx)
		players := repositories.NewPlayerRepository(tx)
		payments := repositories.NewPaymentRepository(tx)

		target, err := clients.GetByID(targetID)
		if err != nil {
			if errors.Is(err, repositories.ErrClientNotFound) {
				return ErrNotFound
			}
			return err
		}

		source, err := clients.GetByID(sourceID)
		if err != nil {
			if errors.Is(err, repositories.ErrClientNotFound) {
				return ErrNotFound
			}
			return err
		}

		playersMoved, err := players.ReassignToClient(sourceID, targetID)
		if err != nil {
			return err
		}

		paymentsMoved, err := payments.ReassignToClient(sourceID, targetID)
		if err != nil {
			return err
		}

		source.Status = models.ClientStatusInactive
		source.Notes = appendNote(source.Notes, fmt.Sprintf("Merged into %s (%s)", target.Name, target.ID))
		if err := clients.Update(source); err != nil {
			return err
		}

		target.Notes = appendNote(target.Notes, fmt.Sprintf("Absorbed %s (%s)", source.Name, source.ID))
		if err := clients.Update(target); err != nil {
			return err
		}

		result = MergeResult{
			TargetID:       targetID,
			SourceID:       sourceID,
			PlayersMoved:   playersMoved,
			PaymentsMoved:  paymentsMoved,
			SourceArchived: true,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("clients_merged", nil)
	slog.Info("clients merged",
		"target_id", targetID,
		"source_id", sourceID,
		"players_moved", result.PlayersMoved,
		"payments_moved", result.PaymentsMoved)

	return &result, nil
}

func (s *clientService) CreatePlayer(name string, clientID *uuid.UUID, birthYear int, level, notes string) (*models.Player, error) {
	if clientID != nil {
		if _, err := s.clientRepo.GetByID(*clientID); err != nil {
			if errors.Is(err, repositories.ErrClientNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	player := &models.Player{
		Name:      strings.TrimSpace(name),
		ClientID:  clientID,
		BirthYear: birthYear,
		Level:     level,
		Notes:     notes,
	}

	if err := s.playerRepo.Create(player); err != nil {
		return nil, err
	}

	slog.Info("player created",
		"player_id", player.ID,
		"linked", clientID != nil)

	return player, nil
}

func (s *clientService) GetPlayer(id uuid.UUID) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return player, nil
}

func (s *clientService) ListPlayers(offset, limit int) ([]models.Player, int64, error) {
	return s.playerRepo.GetAll(offset, limit)
}

func (s *clientService) UpdatePlayer(player *models.Player) error {
	if player.ClientID != nil {
		if _, err := s.clientRepo.GetByID(*player.ClientID); err != nil {
			if errors.Is(err, repositories.ErrClientNotFound) {
				return ErrNotFound
			}
			return err
		}
	}

	if err := s.playerRepo.Update(player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *clientService) DeletePlayer(id uuid.UUID) error {
	if err := s.playerRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrNotFound
		}
		return err
	}
	slog.Info("player deleted", "player_id", id)
	return nil
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}
