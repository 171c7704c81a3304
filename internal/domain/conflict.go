package domain

import "time"

// ConflictEntry describes one infeasible adjacency for one participant,
// with minutes rounded up for display.
type ConflictEntry struct {
	UserID           string `json:"user_id"`
	NeighborGameID   string `json:"neighbor_game_id"`
	NeighborGameName string `json:"neighbor_game_name"`
	TravelTimeMin    int    `json:"travel_time_min"`
	TimeAvailableMin int    `json:"time_available_min"`
}

// ConflictReport is returned to the caller when a submission triggers travel
// alerts and confirmation was not given.
type ConflictReport struct {
	Entries []ConflictEntry `json:"entries"`
}

func (r *ConflictReport) HasAlerts() bool {
	return r != nil && len(r.Entries) > 0
}

// GameEvent is the payload broadcast to calendar subscribers on every
// committed mutation.
type GameEvent struct {
	GameID   string    `json:"game_id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Venue    string    `json:"venue"`
	StartAt  time.Time `json:"start_at"`
	EndAt    time.Time `json:"end_at"`
	Action   string    `json:"action"`
}

// Actions carried by GameEvent.
const (
	GameEventCreated = "created"
	GameEventUpdated = "updated"
	GameEventDeleted = "deleted"
)
