package dto

type ParticipantRequest struct {
	UserID    string `json:"user_id" binding:"required,uuid"`
	IsTrainer bool   `json:"is_trainer"`
}

type SubmitGameRequest struct {
	Name          string               `json:"name" binding:"required"`
	CategoryID    string               `json:"category_id" binding:"required,uuid"`
	VenueID       string               `json:"venue_id" binding:"required,uuid"`
	CreatorID     string               `json:"creator_id" binding:"required,uuid"`
	StartAt       string               `json:"start_at" binding:"required"`
	EndAt         string               `json:"end_at" binding:"required"`
	Participants  []ParticipantRequest `json:"participants"`
	Recurrence    string               `json:"recurrence"`
	RecurrenceEnd string               `json:"recurrence_end"`
	Confirm       bool                 `json:"confirm"`
}

type VenueRequest struct {
	Name           string `json:"name" binding:"required"`
	BuildingNumber string `json:"building_number"`
	Street         string `json:"street" binding:"required"`
	City           string `json:"city" binding:"required"`
	PostalCode     string `json:"postal_code"`
	Country        string `json:"country" binding:"required"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
}
