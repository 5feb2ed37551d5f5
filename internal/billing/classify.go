package billing

import (
	"courtside/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusNormal    = "normal"
	StatusCancelled = "cancelled"
	StatusRain      = "rain"
)

// Classification is the billing outcome of one session for one client.
// Charge and Credit are mutually exclusive; both are zero for rain-outs,
// which are excluded from billing entirely.
type Classification struct {
	Status        string
	Charge        decimal.Decimal
	Credit        decimal.Decimal
	InvolvedCount int
}

// Classify decides how a session bills against one client. InvolvedCount is
// the number of the client's own players occupying participant slots; the
// session price is a per-slot rate, so a client with two players in a normal
// session owes twice the price. Callers must skip sessions where
// InvolvedCount is zero. Classification is deterministic: it depends only on
// the session, the player-id set, and the voided-date set.
func Classify(session *models.TrainingSession, clientPlayerIDs map[uuid.UUID]struct{}, voidedDates map[string]struct{}) Classification {
	involved := 0
	for _, id := range session.ParticipantIDs() {
		if _, ok := clientPlayerIDs[id]; ok {
			involved++
		}
	}

	c := Classification{
		Status:        StatusNormal,
		Charge:        decimal.Zero,
		Credit:        decimal.Zero,
		InvolvedCount: involved,
	}
	if involved == 0 {
		return c
	}

	if _, voided := voidedDates[session.Date]; voided {
		c.Status = StatusRain
		return c
	}

	price := safeAmount(session.Price, "price", session.ID.String())
	slots := decimal.NewFromInt(int64(involved))

	if session.Cancelled {
		c.Status = StatusCancelled
		c.Credit = price.Mul(slots)
		return c
	}

	c.Charge = price.Mul(slots)
	return c
}
