package domain

import "time"

type Game struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"category_id"`
	VenueID    string    `json:"venue_id"`
	CreatorID  string    `json:"creator_id"`
	SeriesID   *string   `json:"series_id"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type GameDetails struct {
	Game         Game           `json:"game"`
	Participants []*Participant `json:"participants"`
}

// SubmitParticipant is one entry of the requested participant set. The
// creator is not listed here; the coordinator always materializes a row for
// the creator itself.
type SubmitParticipant struct {
	UserID    string
	IsTrainer bool
}

type SubmitGameInput struct {
	Name          string
	CategoryID    string
	VenueID       string
	CreatorID     string
	StartAt       time.Time
	EndAt         time.Time
	Participants  []SubmitParticipant
	Recurrence    string
	RecurrenceEnd *time.Time
	// Confirm forces the submission through despite travel alerts.
	Confirm bool
}

// SubmitResult is the outcome of a submit attempt. When NeedsConfirmation is
// set nothing was persisted and Report describes the travel conflicts the
// caller must acknowledge by resubmitting with Confirm.
type SubmitResult struct {
	Game              *Game           `json:"game,omitempty"`
	Occurrences       int             `json:"occurrences,omitempty"`
	NeedsConfirmation bool            `json:"needs_confirmation"`
	Report            *ConflictReport `json:"report,omitempty"`
}
