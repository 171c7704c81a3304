package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type GameSvc interface {
	Submit(ctx context.Context, existingID string, input domain.SubmitGameInput) (*domain.SubmitResult, error)
	Delete(ctx context.Context, gameID, requesterID string) error
	GetDetails(ctx context.Context, id string) (*domain.GameDetails, error)
	ListForUserOn(ctx context.Context, userID string, day time.Time) ([]*domain.Game, error)
}

type VenueSvc interface {
	Create(ctx context.Context, input domain.VenueInput) (*domain.Venue, error)
	Update(ctx context.Context, id string, input domain.VenueInput) (*domain.Venue, error)
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type CategorySvc interface {
	Create(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}

type Handler struct {
	gameService     GameSvc
	venueService    VenueSvc
	userService     UserSvc
	categoryService CategorySvc
}

func NewHandler(gameService GameSvc, venueService VenueSvc, userService UserSvc, categoryService CategorySvc) *Handler {
	return &Handler{
		gameService:     gameService,
		venueService:    venueService,
		userService:     userService,
		categoryService: categoryService,
	}
}

// Games

func (h *Handler) SubmitGame(c *ginext.Context) {
	h.submitGame(c, "")
}

func (h *Handler) UpdateGame(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid game id"})
		return
	}

	h.submitGame(c, id)
}

func (h *Handler) submitGame(c *ginext.Context, existingID string) {
	var req dto.SubmitGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_at format, expected RFC3339",
		})
		return
	}

	endAt, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_at format, expected RFC3339",
		})
		return
	}

	var recurrenceEnd *time.Time
	if req.RecurrenceEnd != "" {
		until, err := time.Parse(time.RFC3339, req.RecurrenceEnd)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid recurrence_end format, expected RFC3339",
			})
			return
		}
		recurrenceEnd = &until
	}

	participants := make([]domain.SubmitParticipant, 0, len(req.Participants))
	for _, p := range req.Participants {
		participants = append(participants, domain.SubmitParticipant{
			UserID:    p.UserID,
			IsTrainer: p.IsTrainer,
		})
	}

	input := domain.SubmitGameInput{
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		VenueID:       req.VenueID,
		CreatorID:     req.CreatorID,
		StartAt:       startAt,
		EndAt:         endAt,
		Participants:  participants,
		Recurrence:    req.Recurrence,
		RecurrenceEnd: recurrenceEnd,
		Confirm:       req.Confirm,
	}

	result, err := h.gameService.Submit(c.Request.Context(), existingID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if result.NeedsConfirmation {
		c.JSON(http.StatusConflict, dto.ToSubmitResponse(result))
		return
	}

	status := http.StatusCreated
	if existingID != "" {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToSubmitResponse(result))
}

func (h *Handler) GetGame(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid game id"})
		return
	}

	details, err := h.gameService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGameDetailsResponse(details))
}

func (h *Handler) DeleteGame(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid game id"})
		return
	}

	requesterID := c.Query("user_id")
	if _, err := uuid.Parse(requesterID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user_id"})
		return
	}

	if err := h.gameService.Delete(c.Request.Context(), id, requesterID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) GetUserGames(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	games, err := h.gameService.ListForUserOn(c.Request.Context(), userID, day)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.GameResponse, 0, len(games))
	for _, g := range games {
		resp = append(resp, dto.ToGameResponse(g))
	}

	c.JSON(http.StatusOK, resp)
}

// Venues

func (h *Handler) CreateVenue(c *ginext.Context) {
	var req dto.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	venue, err := h.venueService.Create(c.Request.Context(), venueInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) UpdateVenue(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	var req dto.VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	venue, err := h.venueService.Update(c.Request.Context(), id, venueInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *Handler) GetVenue(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	venue, err := h.venueService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *Handler) ListVenues(c *ginext.Context) {
	venues, err := h.venueService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Categories

func (h *Handler) CreateCategory(c *ginext.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateCategoryInput{
		Name:  req.Name,
		Color: req.Color,
	}

	category, err := h.categoryService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, dto.ToCategoryResponse(cat))
	}

	c.JSON(http.StatusOK, resp)
}

func venueInput(req dto.VenueRequest) domain.VenueInput {
	return domain.VenueInput{
		Name:           req.Name,
		BuildingNumber: req.BuildingNumber,
		Street:         req.Street,
		City:           req.City,
		PostalCode:     req.PostalCode,
		Country:        req.Country,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrGameNotFound),
		errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotCreator):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
