package domain

// Participant links a user to a game and carries the persisted travel
// verdict for arriving at this game from the user's preceding same-day game.
//
// Alert is true only when TravelTimeMin is non-nil and exceeds
// TimeAvailableMin. TravelPending marks a row whose check was skipped
// because the travel service gave no estimate; the scheduler retries those.
type Participant struct {
	GameID           string   `json:"game_id"`
	UserID           string   `json:"user_id"`
	IsTrainer        bool     `json:"is_trainer"`
	Alert            bool     `json:"alert"`
	TravelTimeMin    *float64 `json:"travel_time_min"`
	TimeAvailableMin *float64 `json:"time_available_min"`
	TravelPending    bool     `json:"travel_pending"`
}

// ConflictVerdict is the outcome of one adjacency check. It is transient:
// it either lands on a Participant row or is surfaced in a ConflictReport.
type ConflictVerdict struct {
	Alert            bool
	TravelTimeMin    *float64
	TimeAvailableMin *float64
	Pending          bool
}

// ApplyVerdict copies a verdict onto the participant row.
func (p *Participant) ApplyVerdict(v ConflictVerdict) {
	p.Alert = v.Alert
	p.TravelTimeMin = v.TravelTimeMin
	p.TimeAvailableMin = v.TimeAvailableMin
	p.TravelPending = v.Pending
}

// VerdictUpdate addresses a verdict write to a participant row of another
// game, e.g. the following neighbor of a newly created game.
type VerdictUpdate struct {
	GameID  string
	UserID  string
	Verdict ConflictVerdict
}

// PendingCheck identifies a participant row awaiting a travel re-check.
type PendingCheck struct {
	GameID string
	UserID string
}
