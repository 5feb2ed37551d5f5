package billing

import (
	"sort"
	"strings"
	"time"

	"courtside/internal/models"

	"github.com/google/uuid"
)

// Scope selects whose ledger to build: the whole family, or one player.
type Scope struct {
	PlayerID *uuid.UUID
}

// FamilyScope covers every player linked to the client
func FamilyScope() Scope {
	return Scope{}
}

// PlayerScope covers a single player of the client
func PlayerScope(playerID uuid.UUID) Scope {
	return Scope{PlayerID: &playerID}
}

// Kind returns the statement scope label for the scope
func (s Scope) Kind() string {
	if s.PlayerID != nil {
		return models.StatementScopePlayer
	}
	return models.StatementScopeFamily
}

// BuildLedger expands a client's full history of sessions and payments into a
// flat, chronologically sorted list of debit/credit entries.
//
// Sessions on a rained-out or closed day emit nothing. Coach-cancelled
// sessions emit one credit per involved player slot. Normal sessions emit one
// fee debit per involved player. Earmarked payments credit their player in
// full; unassigned payments split evenly across the scoped players in family
// scope (the last player absorbs the rounding remainder) and credit the
// single player in full in player scope. Payments sort before same-day
// session fees.
func BuildLedger(client *models.Client, scope Scope, snap *models.Snapshot) []models.LedgerEntry {
	scoped := scopedPlayers(client, scope, snap)
	if len(scoped) == 0 {
		return []models.LedgerEntry{}
	}

	scopedIDs := make(map[uuid.UUID]struct{}, len(scoped))
	for _, p := range scoped {
		scopedIDs[p.ID] = struct{}{}
	}

	playersByID := snap.PlayersByID()
	voided := snap.VoidedDates()

	var entries []models.LedgerEntry

	for i := range snap.Sessions {
		session := &snap.Sessions[i]
		c := Classify(session, scopedIDs, voided)
		if c.InvolvedCount == 0 || c.Status == StatusRain {
			continue
		}

		price := safeAmount(session.Price, "price", session.ID.String())
		ts := sortKey(session.Date, session.StartTime)

		for _, participantID := range session.ParticipantIDs() {
			if _, ok := scopedIDs[participantID]; !ok {
				continue
			}

			entry := models.LedgerEntry{
				Date:     session.Date,
				SortKey:  ts,
				PlayerID: participantID,
			}
			if c.Status == StatusCancelled {
				entry.Kind = models.LedgerEntryCredit
				entry.Credit = price
				entry.Description = describeSession(session, "(coach cancelled)")
			} else {
				entry.Kind = models.LedgerEntryFee
				entry.Debit = price
				entry.Description = describeSession(session, coParticipants(session, participantID, playersByID))
			}
			entries = append(entries, entry)
		}
	}

	for i := range client.Payments {
		entries = append(entries, paymentEntries(&client.Payments[i], scope, scoped, scopedIDs)...)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SortKey < entries[j].SortKey
	})

	return entries
}

func scopedPlayers(client *models.Client, scope Scope, snap *models.Snapshot) []models.Player {
	family := snap.PlayersOf(client.ID)
	if scope.PlayerID == nil {
		return family
	}
	for _, p := range family {
		if p.ID == *scope.PlayerID {
			return []models.Player{p}
		}
	}
	return nil
}

func paymentEntries(payment *models.Payment, scope Scope, scoped []models.Player, scopedIDs map[uuid.UUID]struct{}) []models.LedgerEntry {
	amount := safeAmount(payment.Amount, "amount", payment.ID.String())
	if amount.IsZero() {
		return nil
	}

	ts := sortKey(payment.Date, "")
	base := models.LedgerEntry{
		Date:        payment.Date,
		SortKey:     ts,
		Kind:        models.LedgerEntryPayment,
		Description: describePayment(payment),
		ProofURL:    payment.ProofURL,
	}

	if payment.IsEarmarked() {
		if _, ok := scopedIDs[*payment.PlayerID]; !ok {
			return nil
		}
		entry := base
		entry.PlayerID = *payment.PlayerID
		entry.Credit = amount
		return []models.LedgerEntry{entry}
	}

	// Unassigned payment in single-player scope: the full amount attributes
	// to that player, matching the family grand total when summed with the
	// sibling statements only if the client has one player. See DESIGN.md.
	if scope.PlayerID != nil {
		entry := base
		entry.PlayerID = *scope.PlayerID
		entry.Credit = amount
		return []models.LedgerEntry{entry}
	}

	shares := SplitEvenly(amount, len(scoped))
	entries := make([]models.LedgerEntry, 0, len(scoped))
	for i, p := range scoped {
		entry := base
		entry.PlayerID = p.ID
		entry.Credit = shares[i]
		entries = append(entries, entry)
	}
	return entries
}

func describeSession(session *models.TrainingSession, suffix string) string {
	parts := []string{sessionTypeLabel(session.Type), session.TimeRange()}
	if session.Location != "" {
		parts = append(parts, "at "+session.Location)
	}
	if suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, " ")
}

func describePayment(payment *models.Payment) string {
	if payment.Reference != "" {
		return "Payment received (" + payment.Reference + ")"
	}
	return "Payment received"
}

// coParticipants names the other players in the session, excluding the player
// the entry belongs to. Participant slots whose player record is missing are
// omitted rather than failing the whole ledger.
func coParticipants(session *models.TrainingSession, selfID uuid.UUID, playersByID map[uuid.UUID]models.Player) string {
	var names []string
	for _, id := range session.ParticipantIDs() {
		if id == selfID {
			continue
		}
		if p, ok := playersByID[id]; ok {
			names = append(names, p.Name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return "with " + strings.Join(names, ", ")
}

func sessionTypeLabel(sessionType string) string {
	switch sessionType {
	case models.SessionTypePrivate:
		return "Private"
	case models.SessionTypeSemi:
		return "Semi-private"
	case models.SessionTypeGroup:
		return "Group"
	default:
		return "Session"
	}
}

// sortKey produces a numeric timestamp for stable intra-day ordering:
// date+startTime for sessions, date at midnight for payments, so payments
// sort before same-day session fees.
func sortKey(date, timeOfDay string) int64 {
	if timeOfDay != "" {
		if t, err := time.Parse(models.DateLayout+" "+models.TimeLayout, date+" "+timeOfDay); err == nil {
			return t.Unix()
		}
	}
	if t, err := time.Parse(models.DateLayout, date); err == nil {
		return t.Unix()
	}
	return 0
}
