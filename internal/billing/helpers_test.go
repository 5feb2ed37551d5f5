package billing

import (
	"courtside/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newClient(name string) models.Client {
	return models.Client{
		ID:     uuid.New(),
		Name:   name,
		Status: models.ClientStatusActive,
	}
}

func newPlayer(name string, clientID uuid.UUID) models.Player {
	p := models.Player{
		ID:   uuid.New(),
		Name: name,
	}
	if clientID != uuid.Nil {
		cid := clientID
		p.ClientID = &cid
	}
	return p
}

func newSession(date, start, end, sessionType string, price float64, participants ...uuid.UUID) models.TrainingSession {
	s := models.TrainingSession{
		ID:        uuid.New(),
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Type:      sessionType,
		Price:     decimal.NewFromFloat(price),
	}
	for _, id := range participants {
		s.Participants = append(s.Participants, models.SessionParticipant{
			SessionID: s.ID,
			PlayerID:  id,
		})
	}
	return s
}

func newPayment(clientID uuid.UUID, date string, amount float64) models.Payment {
	return models.Payment{
		ID:       uuid.New(),
		ClientID: clientID,
		Date:     date,
		Amount:   decimal.NewFromFloat(amount),
	}
}

func earmarked(payment models.Payment, playerID uuid.UUID) models.Payment {
	payment.PlayerID = &playerID
	return payment
}

func rainDay(date string) models.DayEvent {
	return models.DayEvent{
		ID:   uuid.New(),
		Date: date,
		Kind: models.DayEventKindRain,
	}
}

func idSet(ids ...uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
