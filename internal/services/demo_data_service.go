package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"courtside/internal/models"
	"courtside/internal/repositories"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrSeedDisabled = errors.New("demo data seeding is disabled")

// session price bands per type, per participant slot
var demoPrices = map[string][]float64{
	models.SessionTypePrivate: {350, 400, 450},
	models.SessionTypeSemi:    {220, 250},
	models.SessionTypeGroup:   {120, 150, 180},
}

var demoLevels = []string{"beginner", "intermediate", "advanced", "squad"}

var demoCourts = []string{"Court 1", "Court 2", "Court 3", "Centre Court"}

type demoDataService struct {
	db      *gorm.DB
	enabled bool
	metrics MetricsRecorderInterface
}

// NewDemoDataService creates the development-only seeding service. When
// enabled is false Seed refuses to run, which is how production is wired.
func NewDemoDataService(db *gorm.DB, enabled bool, metrics MetricsRecorderInterface) DemoDataServiceInterface {
	return &demoDataService{
		db:      db,
		enabled: enabled,
		metrics: metrics,
	}
}

// Seed wipes current data and generates a realistic academy covering the
// given number of months up to today
func (s *demoDataService) Seed(months int) (*SeedSummary, error) {
	if !s.enabled {
		return nil, ErrSeedDisabled
	}
	if months < 1 {
		months = 3
	}

	var summary SeedSummary

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.wipe(tx); err != nil {
			return err
		}

		clients := repositories.NewClientRepository(tx)
		players := repositories.NewPlayerRepository(tx)
		sessions := repositories.NewSessionRepository(tx)
		payments := repositories.NewPaymentRepository(tx)
		dayEvents := repositories.NewDayEventRepository(tx)

		clientCount := gofakeit.Number(8, 14)
		var roster []models.Player

		for i := 0; i < clientCount; i++ {
			familyName := gofakeit.LastName()
			client := &models.Client{
				Name:   familyName + " Family",
				Email:  gofakeit.Email(),
				Phone:  gofakeit.Phone(),
				Status: models.ClientStatusActive,
			}
			if err := clients.Create(client); err != nil {
				return err
			}
			summary.Clients++

			for j := 0; j < gofakeit.Number(1, 3); j++ {
				player := &models.Player{
					Name:      gofakeit.FirstName() + " " + familyName,
					ClientID:  &client.ID,
					BirthYear: gofakeit.Number(2008, 2018),
					Level:     demoLevels[gofakeit.Number(0, len(demoLevels)-1)],
				}
				if err := players.Create(player); err != nil {
					return err
				}
				roster = append(roster, *player)
				summary.Players++
			}
		}

		// a few walk-ins with no billing account
		for i := 0; i < gofakeit.Number(1, 3); i++ {
			player := &models.Player{
				Name:  gofakeit.Name(),
				Level: demoLevels[gofakeit.Number(0, len(demoLevels)-1)],
			}
			if err := players.Create(player); err != nil {
				return err
			}
			summary.Players++
		}

		end := time.Now()
		start := end.AddDate(0, -months, 0)

		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			// courts rest on Sundays
			if day.Weekday() == time.Sunday {
				continue
			}
			date := day.Format(models.DateLayout)

			if gofakeit.Number(1, 100) <= 3 {
				event := &models.DayEvent{
					Date: date,
					Kind: models.DayEventKindRain,
					Note: "rained out",
				}
				if err := dayEvents.Create(event); err != nil {
					return err
				}
				summary.DayEvents++
			}

			for i := 0; i < gofakeit.Number(2, 5); i++ {
				sessionType := weightedSessionType()
				startHour := gofakeit.Number(7, 18)

				participants := pickParticipants(roster, sessionType)
				session := &models.TrainingSession{
					Date:      date,
					StartTime: fmt.Sprintf("%02d:00", startHour),
					EndTime:   fmt.Sprintf("%02d:00", startHour+1),
					Type:      sessionType,
					Location:  demoCourts[gofakeit.Number(0, len(demoCourts)-1)],
					Price:     demoPrice(sessionType),
					Cancelled: gofakeit.Number(1, 100) <= 4,
				}
				if err := sessions.Create(session, participants); err != nil {
					return err
				}
				summary.Sessions++
			}
		}

		// roughly monthly payments per client
		allClients, err := clients.GetAllWithPayments()
		if err != nil {
			return err
		}
		for _, client := range allClients {
			for m := 0; m < months; m++ {
				if gofakeit.Number(1, 100) <= 20 {
					continue // some months go unpaid
				}
				payDay := end.AddDate(0, -m, 0)
				payment := &models.Payment{
					ClientID:  client.ID,
					Date:      payDay.Format(models.DateLayout),
					Amount:    decimal.NewFromInt(int64(gofakeit.Number(4, 24) * 100)),
					Reference: fmt.Sprintf("EFT-%d", gofakeit.Number(1000, 9999)),
				}
				if err := payments.Create(payment); err != nil {
					return err
				}
				summary.Payments++
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("demo seed failed: %w", err)
	}

	s.metrics.IncrementCounter("demo_seed_run", nil)
	slog.Info("demo data seeded",
		"clients", summary.Clients,
		"players", summary.Players,
		"sessions", summary.Sessions,
		"payments", summary.Payments,
		"day_events", summary.DayEvents)

	return &summary, nil
}

func (s *demoDataService) wipe(tx *gorm.DB) error {
	tables := []string{
		"session_participants",
		"training_sessions",
		"payments",
		"day_events",
		"players",
		"clients",
	}
	for _, table := range tables {
		if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to wipe %s: %w", table, err)
		}
	}
	return nil
}

func weightedSessionType() string {
	roll := gofakeit.Number(1, 10)
	switch {
	case roll <= 3:
		return models.SessionTypePrivate
	case roll <= 5:
		return models.SessionTypeSemi
	default:
		return models.SessionTypeGroup
	}
}

func demoPrice(sessionType string) decimal.Decimal {
	band := demoPrices[sessionType]
	return decimal.NewFromFloat(band[gofakeit.Number(0, len(band)-1)])
}

func pickParticipants(roster []models.Player, sessionType string) []uuid.UUID {
	if len(roster) == 0 {
		return nil
	}

	var want int
	switch sessionType {
	case models.SessionTypePrivate:
		want = 1
	case models.SessionTypeSemi:
		want = 2
	default:
		want = gofakeit.Number(3, 6)
	}
	if want > len(roster) {
		want = len(roster)
	}

	picked := make([]uuid.UUID, 0, want)
	seen := make(map[uuid.UUID]struct{}, want)
	for len(picked) < want {
		p := roster[gofakeit.Number(0, len(roster)-1)]
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		picked = append(picked, p.ID)
	}
	return picked
}
