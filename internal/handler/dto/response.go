package dto

import (
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type GameResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	CategoryID string  `json:"category_id"`
	VenueID    string  `json:"venue_id"`
	CreatorID  string  `json:"creator_id"`
	SeriesID   *string `json:"series_id,omitempty"`
	StartAt    string  `json:"start_at"`
	EndAt      string  `json:"end_at"`
	CreatedAt  string  `json:"created_at"`
}

type ParticipantResponse struct {
	UserID           string   `json:"user_id"`
	IsTrainer        bool     `json:"is_trainer"`
	Alert            bool     `json:"alert"`
	TravelTimeMin    *float64 `json:"travel_time_min,omitempty"`
	TimeAvailableMin *float64 `json:"time_available_min,omitempty"`
	TravelPending    bool     `json:"travel_pending"`
}

type GameDetailsResponse struct {
	Game         GameResponse          `json:"game"`
	Participants []ParticipantResponse `json:"participants"`
}

type ConflictEntryResponse struct {
	UserID           string `json:"user_id"`
	NeighborGameID   string `json:"neighbor_game_id"`
	NeighborGameName string `json:"neighbor_game_name"`
	TravelTimeMin    int    `json:"travel_time_min"`
	TimeAvailableMin int    `json:"time_available_min"`
}

type ConflictReportResponse struct {
	Entries []ConflictEntryResponse `json:"entries"`
}

type SubmitResponse struct {
	Game              *GameResponse           `json:"game,omitempty"`
	Occurrences       int                     `json:"occurrences,omitempty"`
	NeedsConfirmation bool                    `json:"needs_confirmation"`
	Report            *ConflictReportResponse `json:"report,omitempty"`
}

type VenueResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	BuildingNumber string   `json:"building_number"`
	Street         string   `json:"street"`
	City           string   `json:"city"`
	PostalCode     string   `json:"postal_code"`
	Country        string   `json:"country"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToGameResponse(g *domain.Game) GameResponse {
	return GameResponse{
		ID:         g.ID,
		Name:       g.Name,
		CategoryID: g.CategoryID,
		VenueID:    g.VenueID,
		CreatorID:  g.CreatorID,
		SeriesID:   g.SeriesID,
		StartAt:    g.StartAt.Format(time.RFC3339),
		EndAt:      g.EndAt.Format(time.RFC3339),
		CreatedAt:  g.CreatedAt.Format(time.RFC3339),
	}
}

func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		UserID:           p.UserID,
		IsTrainer:        p.IsTrainer,
		Alert:            p.Alert,
		TravelTimeMin:    p.TravelTimeMin,
		TimeAvailableMin: p.TimeAvailableMin,
		TravelPending:    p.TravelPending,
	}
}

func ToGameDetailsResponse(d *domain.GameDetails) GameDetailsResponse {
	parts := make([]ParticipantResponse, 0, len(d.Participants))
	for _, p := range d.Participants {
		parts = append(parts, ToParticipantResponse(p))
	}

	return GameDetailsResponse{
		Game:         ToGameResponse(&d.Game),
		Participants: parts,
	}
}

func ToConflictReportResponse(r *domain.ConflictReport) *ConflictReportResponse {
	if r == nil {
		return nil
	}

	entries := make([]ConflictEntryResponse, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, ConflictEntryResponse{
			UserID:           e.UserID,
			NeighborGameID:   e.NeighborGameID,
			NeighborGameName: e.NeighborGameName,
			TravelTimeMin:    e.TravelTimeMin,
			TimeAvailableMin: e.TimeAvailableMin,
		})
	}

	return &ConflictReportResponse{Entries: entries}
}

func ToSubmitResponse(r *domain.SubmitResult) SubmitResponse {
	resp := SubmitResponse{
		Occurrences:       r.Occurrences,
		NeedsConfirmation: r.NeedsConfirmation,
		Report:            ToConflictReportResponse(r.Report),
	}
	if r.Game != nil {
		g := ToGameResponse(r.Game)
		resp.Game = &g
	}
	return resp
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:             v.ID,
		Name:           v.Name,
		BuildingNumber: v.BuildingNumber,
		Street:         v.Street,
		City:           v.City,
		PostalCode:     v.PostalCode,
		Country:        v.Country,
		Latitude:       v.Latitude,
		Longitude:      v.Longitude,
		CreatedAt:      v.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:    c.ID,
		Name:  c.Name,
		Color: c.Color,
	}
}
