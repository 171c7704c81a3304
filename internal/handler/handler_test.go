package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/CourtBooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockGameSvc, *hmocks.MockVenueSvc, *hmocks.MockUserSvc, *hmocks.MockCategorySvc, http.Handler) {
	t.Helper()
	gameSvc := hmocks.NewMockGameSvc(t)
	venueSvc := hmocks.NewMockVenueSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)
	categorySvc := hmocks.NewMockCategorySvc(t)

	h := NewHandler(gameSvc, venueSvc, userSvc, categorySvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/games", h.SubmitGame)
		api.PUT("/games/:id", h.UpdateGame)
		api.GET("/games/:id", h.GetGame)
		api.DELETE("/games/:id", h.DeleteGame)

		api.POST("/venues", h.CreateVenue)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)
		api.PUT("/venues/:id", h.UpdateVenue)

		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/games", h.GetUserGames)

		api.POST("/categories", h.CreateCategory)
		api.GET("/categories", h.ListCategories)
	}

	return gameSvc, venueSvc, userSvc, categorySvc, r
}

func submitBody(confirm bool) dto.SubmitGameRequest {
	return dto.SubmitGameRequest{
		Name:       "Evening doubles",
		CategoryID: uuid.New().String(),
		VenueID:    uuid.New().String(),
		CreatorID:  uuid.New().String(),
		StartAt:    time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC).Format(time.RFC3339),
		EndAt:      time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC).Format(time.RFC3339),
		Participants: []dto.ParticipantRequest{
			{UserID: uuid.New().String()},
		},
		Confirm: confirm,
	}
}

// --- Games ---

func TestHandler_SubmitGame_Created(t *testing.T) {
	gameSvc, _, _, _, r := setupRouter(t)

	game := &domain.Game{
		ID:        uuid.New().String(),
		Name:      "Evening doubles",
		StartAt:   time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}

	gameSvc.EXPECT().Submit(mock.Anything, "", mock.Anything).
		Return(&domain.SubmitResult{Game: game, Occurrences: 1}, nil)

	body, _ := json.Marshal(submitBody(false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Game)
	assert.Equal(t, game.ID, resp.Game.ID)
	assert.Equal(t, 1, resp.Occurrences)
	assert.False(t, resp.NeedsConfirmation)
}

func TestHandler_SubmitGame_NeedsConfirmation(t *testing.T) {
	gameSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	neighborID := uuid.New().String()

	gameSvc.EXPECT().Submit(mock.Anything, "", mock.Anything).
		Return(&domain.SubmitResult{
			NeedsConfirmation: true,
			Report: &domain.ConflictReport{Entries: []domain.ConflictEntry{
				{
					UserID:           userID,
					NeighborGameID:   neighborID,
					NeighborGameName: "Morning game",
					TravelTimeMin:    30,
					TimeAvailableMin: 20,
				},
			}},
		}, nil)

	body, _ := json.Marshal(submitBody(false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.NeedsConfirmation)
	assert.Nil(t, resp.Game)
	require.NotNil(t, resp.Report)
	require.Len(t, resp.Report.Entries, 1)
	assert.Equal(t, "Morning game", resp.Report.Entries[0].NeighborGameName)
	assert.Equal(t, 30, resp.Report.Entries[0].TravelTimeMin)
	assert.Equal(t, 20, resp.Report.Entries[0].TimeAvailableMin)
}

func TestHandler_SubmitGame_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SubmitGame_InvalidStartAt(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	reqBody := submitBody(false)
	reqBody.StartAt = "not-a-date"
	body, _ := json.Marshal(reqBody)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid start_at format, expected RFC3339", resp.Error)
}

func TestHandler_SubmitGame_ValidationError(t *testing.T) {
	gameSvc, _, _, _, r := setupRouter(t)

	gameSvc.EXPECT().Submit(mock.Anything, "", mock.Anything).
		Return(nil, domain.ErrValidation)

	body, _ := json.Marshal(submitBody(false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SubmitGame_InternalError(t *testing.T) {
	gameSvc, _, _, _, r := setupRouter(t)

	gameSvc.EXPECT().Submit(mock.Anything, "", mock.Anything).
		Return(nil, assert.AnError)

	body, _ := json.Marshal(submitBody(false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/games", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}

func TestHandler_UpdateGame_OK(t *testing.T) {
	gameSvc, _, _, _, r := setupRouter(t)

	gameID := uuid.New().String()
	game := &domain.Game{
		ID:        gameID,
		Name:      "Evening doubles",
		StartAt:   time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}

	gameSvc.EXPECT().Submit(mock.Anything, gameID, mock.Anything).
		Return(&domain.SubmitResult{Game: game, Occurrences: 1}, nil)

	body, _ := json.Marshal(submitBody(true))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/games/"+gameID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateGame_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body, _ := json.Marshal(submitBody(false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/games/not-a-uuid", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetGame_Success(t *testing.T) {
	gameSvc, _, _, _, r := setupRouter(t)

	gameID := uuid.New().String()
	travel := 25.0
	avail := 40.0
	details := &domain.GameDetails{
		Game: domain.Game{ID: gameID, Name: "Evening doubles", StartAt: time.Now(), EndAt: time.Now().Add(time.Hour), CreatedAt: time.Now()},
		Participants: []*domain.Participant{
			{UserID: uuid.New().String(), Alert: true, TravelTimeMin: &travel, TimeAvailableMin: &avail},
		},
	}

	gameSvc.EXPECT().GetDetails(mock.Anything, gameID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/games/"+gameID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.GameDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, gameID, resp.Game.ID)
	require.Len(t, resp.Participants, 1)
	assert.True(t, resp.Participants[0].Alert)
	require.NotNil(t, resp.Participants[0].TravelTimeMin)
	assert.Equal(t, 25.0, *resp.Participants[0].TravelTimeMin)
}

func TestHandler_GetGame_NotFound(t *testing.T) {
	gameSvc, _, _, _, r := setupRouter(t)

	gameID := uuid.New().String()
	gameSvc.EXPECT().GetDetails(mock.Anything, gameID).Return(nil, domain.ErrGameNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/games/"+gameID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteGame_Success(t *testing.T) {
	gameSvc, _, _, _, r := setupRouter(t)

	gameID := uuid.New().String()
	userID := uuid.New().String()

	gameSvc.EXPECT().Delete(mock.Anything, gameID, userID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/games/"+gameID+"?user_id="+userID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteGame_NotCreator(t *testing.T) {
	gameSvc, _, _, _, r := setupRouter(t)

	gameID := uuid.New().String()
	userID := uuid.New().String()

	gameSvc.EXPECT().Delete(mock.Anything, gameID, userID).Return(domain.ErrNotCreator)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/games/"+gameID+"?user_id="+userID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteGame_MissingUserID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/games/"+uuid.New().String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserGames_Success(t *testing.T) {
	gameSvc, _, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	games := []*domain.Game{
		{ID: uuid.New().String(), Name: "Morning game", StartAt: day.Add(9 * time.Hour), EndAt: day.Add(10 * time.Hour), CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "Evening doubles", StartAt: day.Add(18 * time.Hour), EndAt: day.Add(19 * time.Hour), CreatedAt: time.Now()},
	}

	gameSvc.EXPECT().ListForUserOn(mock.Anything, userID, day).Return(games, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/games?date=2026-03-14", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.GameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Morning game", resp[0].Name)
}

func TestHandler_GetUserGames_BadDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+uuid.New().String()+"/games?date=14-03-2026", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Venues ---

func TestHandler_CreateVenue_Success(t *testing.T) {
	_, venueSvc, _, _, r := setupRouter(t)

	lat, lon := 52.2297, 21.0122
	venue := &domain.Venue{
		ID:        uuid.New().String(),
		Name:      "Central Courts",
		Street:    "Main",
		City:      "Warsaw",
		Country:   "Poland",
		Latitude:  &lat,
		Longitude: &lon,
		CreatedAt: time.Now(),
	}

	venueSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(venue, nil)

	body, _ := json.Marshal(dto.VenueRequest{
		Name:    "Central Courts",
		Street:  "Main",
		City:    "Warsaw",
		Country: "Poland",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/venues", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Central Courts", resp.Name)
	require.NotNil(t, resp.Latitude)
	assert.Equal(t, 52.2297, *resp.Latitude)
}

func TestHandler_CreateVenue_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"name":"Central Courts"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/venues", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateVenue_Success(t *testing.T) {
	_, venueSvc, _, _, r := setupRouter(t)

	venueID := uuid.New().String()
	venue := &domain.Venue{ID: venueID, Name: "Central Courts", Street: "Nowa", City: "Warsaw", Country: "Poland", CreatedAt: time.Now()}

	venueSvc.EXPECT().Update(mock.Anything, venueID, mock.Anything).Return(venue, nil)

	body, _ := json.Marshal(dto.VenueRequest{
		Name:    "Central Courts",
		Street:  "Nowa",
		City:    "Warsaw",
		Country: "Poland",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/venues/"+venueID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetVenue_NotFound(t *testing.T) {
	_, venueSvc, _, _, r := setupRouter(t)

	venueID := uuid.New().String()
	venueSvc.EXPECT().GetByID(mock.Anything, venueID).Return(nil, domain.ErrVenueNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/venues/"+venueID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListVenues_Success(t *testing.T) {
	_, venueSvc, _, _, r := setupRouter(t)

	venues := []*domain.Venue{
		{ID: uuid.New().String(), Name: "Central Courts", CreatedAt: time.Now()},
		{ID: uuid.New().String(), Name: "Riverside Hall", CreatedAt: time.Now()},
	}

	venueSvc.EXPECT().List(mock.Anything).Return(venues, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/venues", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, userSvc, _, r := setupRouter(t)

	chatID := int64(12345)
	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       "alice",
		Email:          "alice@example.com",
		TelegramChatID: &chatID,
		CreatedAt:      time.Now(),
	}

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{
		Username:       "alice",
		Email:          "alice@example.com",
		TelegramChatID: &chatID,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	require.NotNil(t, resp.TelegramChatID)
	assert.Equal(t, int64(12345), *resp.TelegramChatID)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	_, _, userSvc, _, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice", Email: "alice@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_InvalidEmail(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"username":"alice","email":"not-an-email"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers_Success(t *testing.T) {
	_, _, userSvc, _, r := setupRouter(t)

	users := []*domain.User{
		{ID: uuid.New().String(), Username: "alice", Email: "alice@example.com", CreatedAt: time.Now()},
	}

	userSvc.EXPECT().List(mock.Anything).Return(users, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "alice", resp[0].Username)
}

// --- Categories ---

func TestHandler_CreateCategory_Success(t *testing.T) {
	_, _, _, categorySvc, r := setupRouter(t)

	category := &domain.Category{ID: uuid.New().String(), Name: "Training", Color: "#00ff00"}

	categorySvc.EXPECT().Create(mock.Anything, mock.Anything).Return(category, nil)

	body, _ := json.Marshal(dto.CreateCategoryRequest{Name: "Training", Color: "#00ff00"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Training", resp.Name)
}

func TestHandler_ListCategories_Success(t *testing.T) {
	_, _, _, categorySvc, r := setupRouter(t)

	categories := []*domain.Category{
		{ID: uuid.New().String(), Name: "Training", Color: "#00ff00"},
		{ID: uuid.New().String(), Name: "Tournament", Color: "#ff0000"},
	}

	categorySvc.EXPECT().List(mock.Anything).Return(categories, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
