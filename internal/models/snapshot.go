package models

import "github.com/google/uuid"

// Snapshot is the immutable in-memory bundle of domain records the billing
// core computes over. The core never mutates a snapshot and performs no I/O;
// callers load one per request and discard it afterwards.
type Snapshot struct {
	Clients   []Client
	Players   []Player
	Sessions  []TrainingSession
	DayEvents []DayEvent
}

// PlayersByID returns an id lookup over every player in the snapshot
func (s *Snapshot) PlayersByID() map[uuid.UUID]Player {
	byID := make(map[uuid.UUID]Player, len(s.Players))
	for _, p := range s.Players {
		byID[p.ID] = p
	}
	return byID
}

// PlayersOf returns the client's players in snapshot (roster) order
func (s *Snapshot) PlayersOf(clientID uuid.UUID) []Player {
	var players []Player
	for _, p := range s.Players {
		if p.BelongsTo(clientID) {
			players = append(players, p)
		}
	}
	return players
}

// VoidedDates returns the set of dates voided by a rain or closure event
func (s *Snapshot) VoidedDates() map[string]struct{} {
	dates := make(map[string]struct{}, len(s.DayEvents))
	for _, e := range s.DayEvents {
		if e.VoidsSessions() {
			dates[e.Date] = struct{}{}
		}
	}
	return dates
}
