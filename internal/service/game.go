package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/conflict"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/recurrence"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	maxParticipants         = 4
	maxTrainingParticipants = 5
	maxRecurrenceSpan       = 365 * 24 * time.Hour
	pendingCheckBatch       = 100
)

// GameService coordinates booking mutations: validation, recurrence
// expansion, conflict evaluation for the creator and every participant, the
// confirmation gate, and the final transactional commit. Nothing is
// persisted while a submission still needs confirmation.
type GameService struct {
	gameRepo     ports.GameRepo
	venueRepo    ports.VenueRepo
	userRepo     ports.UserRepo
	categoryRepo ports.CategoryRepo
	evaluator    *conflict.Evaluator
	notifier     ports.GameNotifier
	publisher    ports.CalendarPublisher
	logger       logger.Logger
}

func NewGameService(
	gameRepo ports.GameRepo,
	venueRepo ports.VenueRepo,
	userRepo ports.UserRepo,
	categoryRepo ports.CategoryRepo,
	evaluator *conflict.Evaluator,
	notifier ports.GameNotifier,
	publisher ports.CalendarPublisher,
	logger logger.Logger,
) *GameService {
	return &GameService{
		gameRepo:     gameRepo,
		venueRepo:    venueRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		evaluator:    evaluator,
		notifier:     notifier,
		publisher:    publisher,
		logger:       logger,
	}
}

// Submit creates a game, or updates the one identified by existingID when it
// is non-empty. The two-phase contract: when the conflict check produces
// alerts and input.Confirm is false, the returned result carries the report
// and nothing is persisted; resubmitting the same input with Confirm forces
// the commit.
func (s *GameService) Submit(ctx context.Context, existingID string, input domain.SubmitGameInput) (*domain.SubmitResult, error) {
	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}

	if err = validateSubmit(input, category); err != nil {
		return nil, err
	}

	venue, err := s.venueRepo.GetByID(ctx, input.VenueID)
	if err != nil {
		return nil, fmt.Errorf("check venue: %w", err)
	}

	creator, err := s.userRepo.GetByID(ctx, input.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("check creator: %w", err)
	}

	users, err := s.loadParticipants(ctx, input.Participants)
	if err != nil {
		return nil, err
	}

	var existing *domain.Game
	var currentParts []*domain.Participant
	if existingID != "" {
		existing, err = s.gameRepo.GetByID(ctx, existingID)
		if err != nil {
			return nil, fmt.Errorf("get game: %w", err)
		}
		if existing.CreatorID != input.CreatorID {
			return nil, domain.ErrNotCreator
		}
		currentParts, err = s.gameRepo.Participants(ctx, existingID)
		if err != nil {
			return nil, fmt.Errorf("list participants: %w", err)
		}
	}

	occs, err := s.expandOccurrences(existing, input)
	if err != nil {
		return nil, err
	}

	venues := map[string]*domain.Venue{venue.ID: venue}

	// Dry run: evaluate the primary occurrence for the creator and every
	// resulting participant before anything is written.
	primary, err := s.evaluateOccurrence(ctx, venues, existingID, occs[0], venue, participantUserIDs(input))
	if err != nil {
		return nil, err
	}

	if primary.report.HasAlerts() && !input.Confirm {
		s.logger.Info("submission needs confirmation",
			logger.String("creator_id", input.CreatorID),
			logger.Int("alerts", len(primary.report.Entries)),
		)
		return &domain.SubmitResult{NeedsConfirmation: true, Report: primary.report}, nil
	}

	if existing != nil {
		return s.commitUpdate(ctx, existing, currentParts, input, venue, category, creator, users, occs[0], primary, venues)
	}
	return s.commitCreate(ctx, input, venue, category, creator, users, occs, primary, venues)
}

// Delete removes a game. A series-linked game takes the future part of its
// series with it, and the series record itself when nothing remains. The
// neighbors that used to sandwich each deleted game become adjacent and get
// re-verdicted; a follower left without a preceding game is cleared to
// neutral.
func (s *GameService) Delete(ctx context.Context, gameID, requesterID string) error {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return fmt.Errorf("get game: %w", err)
	}
	if game.CreatorID != requesterID {
		return domain.ErrNotCreator
	}

	doomed := []*domain.Game{game}
	var seriesID *string
	if game.SeriesID != nil {
		seriesID = game.SeriesID
		doomed, err = s.gameRepo.ListSeriesGamesFrom(ctx, *game.SeriesID, game.StartAt)
		if err != nil {
			return fmt.Errorf("list series games: %w", err)
		}
	}

	excluded := make(map[string]bool, len(doomed))
	ids := make([]string, 0, len(doomed))
	for _, g := range doomed {
		excluded[g.ID] = true
		ids = append(ids, g.ID)
	}

	venues := map[string]*domain.Venue{}
	neighborSet := map[string]domain.VerdictUpdate{}
	affected := map[string]bool{}

	for _, g := range doomed {
		parts, err := s.gameRepo.Participants(ctx, g.ID)
		if err != nil {
			return fmt.Errorf("list participants: %w", err)
		}
		for _, p := range parts {
			affected[p.UserID] = true
			timeline, err := s.userTimeline(ctx, p.UserID, g.StartAt, excluded, nil)
			if err != nil {
				return err
			}
			next := conflict.Following(timeline, g.EndAt, "")
			if next == nil {
				continue
			}
			verdict, err := s.precedingVerdict(ctx, venues, timeline, next)
			if err != nil {
				return err
			}
			neighborSet[next.ID+"/"+p.UserID] = domain.VerdictUpdate{
				GameID:  next.ID,
				UserID:  p.UserID,
				Verdict: verdict,
			}
		}
	}

	if err = s.gameRepo.Delete(ctx, ids, seriesID, collectUpdates(neighborSet)); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}

	s.logger.Info("game deleted",
		logger.String("game_id", gameID),
		logger.Int("cascade_size", len(ids)),
		logger.String("requester_id", requesterID),
	)

	notify := make([]string, 0, len(affected))
	for userID := range affected {
		notify = append(notify, userID)
	}
	sort.Strings(notify)

	go s.announceDeleted(context.WithoutCancel(ctx), game, notify)

	return nil
}

// OnVenueRelocated recomputes travel verdicts for every future game at the
// venue after its coordinates changed. No requester is confirming anything
// here, so updates apply unconditionally to every participant row, on both
// adjacency sides.
func (s *GameService) OnVenueRelocated(ctx context.Context, venue *domain.Venue, from time.Time) error {
	games, err := s.gameRepo.ListByVenueFrom(ctx, venue.ID, from)
	if err != nil {
		return fmt.Errorf("list games by venue: %w", err)
	}

	venues := map[string]*domain.Venue{venue.ID: venue}
	var updates []domain.VerdictUpdate

	for _, g := range games {
		parts, err := s.gameRepo.Participants(ctx, g.ID)
		if err != nil {
			return fmt.Errorf("list participants: %w", err)
		}
		for _, p := range parts {
			timeline, err := s.userTimeline(ctx, p.UserID, g.StartAt, nil, nil)
			if err != nil {
				return err
			}

			var own domain.ConflictVerdict
			if prev := conflict.Preceding(timeline, g.StartAt, g.ID); prev != nil {
				prevVenue, err := s.venueOf(ctx, venues, prev.VenueID)
				if err != nil {
					return err
				}
				own = s.evaluator.Evaluate(ctx, prev.EndAt, g.StartAt, prevVenue, venue)
			}
			updates = append(updates, domain.VerdictUpdate{GameID: g.ID, UserID: p.UserID, Verdict: own})

			if next := conflict.Following(timeline, g.EndAt, g.ID); next != nil {
				nextVenue, err := s.venueOf(ctx, venues, next.VenueID)
				if err != nil {
					return err
				}
				verdict := s.evaluator.Evaluate(ctx, g.EndAt, next.StartAt, venue, nextVenue)
				updates = append(updates, domain.VerdictUpdate{GameID: next.ID, UserID: p.UserID, Verdict: verdict})
			}
		}
	}

	if len(updates) == 0 {
		return nil
	}

	if err = s.gameRepo.SaveVerdicts(ctx, updates); err != nil {
		return fmt.Errorf("save verdicts: %w", err)
	}

	s.logger.Info("venue relocation cascade applied",
		logger.String("venue_id", venue.ID),
		logger.Int("games", len(games)),
		logger.Int("updates", len(updates)),
	)

	return nil
}

// RefreshPendingVerdicts retries conflict evaluation for participant rows
// whose travel check was skipped by an estimator outage. Rows that still get
// no estimate stay pending for the next pass.
func (s *GameService) RefreshPendingVerdicts(ctx context.Context) (int, error) {
	checks, err := s.gameRepo.ListPendingTravelChecks(ctx, time.Now().UTC(), pendingCheckBatch)
	if err != nil {
		return 0, fmt.Errorf("list pending checks: %w", err)
	}
	if len(checks) == 0 {
		return 0, nil
	}

	venues := map[string]*domain.Venue{}
	var updates []domain.VerdictUpdate

	for _, check := range checks {
		game, err := s.gameRepo.GetByID(ctx, check.GameID)
		if err != nil {
			return 0, fmt.Errorf("get game: %w", err)
		}
		timeline, err := s.userTimeline(ctx, check.UserID, game.StartAt, nil, nil)
		if err != nil {
			return 0, err
		}
		verdict, err := s.precedingVerdict(ctx, venues, timeline, game)
		if err != nil {
			return 0, err
		}
		updates = append(updates, domain.VerdictUpdate{GameID: check.GameID, UserID: check.UserID, Verdict: verdict})
	}

	if err = s.gameRepo.SaveVerdicts(ctx, updates); err != nil {
		return 0, fmt.Errorf("save verdicts: %w", err)
	}

	return len(updates), nil
}

func (s *GameService) GetDetails(ctx context.Context, gameID string) (*domain.GameDetails, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	parts, err := s.gameRepo.Participants(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return &domain.GameDetails{Game: *game, Participants: parts}, nil
}

func (s *GameService) ListForUserOn(ctx context.Context, userID string, day time.Time) ([]*domain.Game, error) {
	return s.gameRepo.ListForUserOn(ctx, userID, day)
}

// --- submission internals ---

func validateSubmit(input domain.SubmitGameInput, category *domain.Category) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !input.EndAt.After(input.StartAt) {
		return fmt.Errorf("%w: the game must end after it starts", domain.ErrValidation)
	}

	trainers := 0
	seen := make(map[string]bool, len(input.Participants))
	for _, p := range input.Participants {
		if p.UserID == input.CreatorID {
			return fmt.Errorf("%w: the creator is always a participant and must not be listed", domain.ErrValidation)
		}
		if seen[p.UserID] {
			return fmt.Errorf("%w: duplicate participant", domain.ErrValidation)
		}
		seen[p.UserID] = true
		if p.IsTrainer {
			trainers++
		}
	}
	if trainers > 1 {
		return fmt.Errorf("%w: at most one trainer per game", domain.ErrValidation)
	}

	if category.IsTraining() {
		if len(input.Participants) > maxTrainingParticipants {
			return fmt.Errorf("%w: training can have up to 4 participants plus a trainer", domain.ErrValidation)
		}
	} else {
		if trainers > 0 {
			return fmt.Errorf("%w: only training sessions include a trainer", domain.ErrValidation)
		}
		if len(input.Participants) > maxParticipants {
			return fmt.Errorf("%w: games can have up to 4 participants", domain.ErrValidation)
		}
	}

	if input.Recurrence != domain.RecurrenceNone {
		if !recurrence.IsValidKind(input.Recurrence) {
			return fmt.Errorf("%w: unknown recurrence type", domain.ErrValidation)
		}
		if input.RecurrenceEnd == nil {
			return fmt.Errorf("%w: end date of recurrence is required", domain.ErrValidation)
		}
		if input.RecurrenceEnd.Before(startOfDay(input.StartAt)) {
			return fmt.Errorf("%w: recurrence end date cannot be before the start date", domain.ErrValidation)
		}
		if input.RecurrenceEnd.Sub(input.StartAt) > maxRecurrenceSpan {
			return fmt.Errorf("%w: recurrence end date cannot be more than one year from the start date", domain.ErrValidation)
		}
	}

	return nil
}

func (s *GameService) loadParticipants(ctx context.Context, parts []domain.SubmitParticipant) (map[string]*domain.User, error) {
	if len(parts) == 0 {
		return map[string]*domain.User{}, nil
	}

	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		ids = append(ids, p.UserID)
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("check participants: %w", err)
	}
	if len(users) != len(ids) {
		return nil, fmt.Errorf("%w: unknown participant", domain.ErrUserNotFound)
	}

	byID := make(map[string]*domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

func (s *GameService) expandOccurrences(existing *domain.Game, input domain.SubmitGameInput) ([]recurrence.Occurrence, error) {
	if existing != nil || input.Recurrence == domain.RecurrenceNone {
		// Updates edit a single occurrence; recurrence parameters are fixed
		// at series creation.
		return []recurrence.Occurrence{{Start: input.StartAt, End: input.EndAt}}, nil
	}

	occs, err := recurrence.Expand(input.StartAt, input.EndAt, input.Recurrence, *input.RecurrenceEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	return occs, nil
}

// occurrenceEval is the dry-run outcome for one occurrence: the verdict to
// embed on each participant row of the occurrence itself, the verdict
// updates for following neighbors, and the alert report.
type occurrenceEval struct {
	own       map[string]domain.ConflictVerdict
	neighbors []domain.VerdictUpdate
	report    *domain.ConflictReport
}

func (s *GameService) evaluateOccurrence(
	ctx context.Context,
	venues map[string]*domain.Venue,
	excludeID string,
	occ recurrence.Occurrence,
	venue *domain.Venue,
	userIDs []string,
) (*occurrenceEval, error) {
	eval := &occurrenceEval{
		own:    make(map[string]domain.ConflictVerdict, len(userIDs)),
		report: &domain.ConflictReport{},
	}

	for _, userID := range userIDs {
		timeline, err := s.userTimeline(ctx, userID, occ.Start, map[string]bool{excludeID: true}, nil)
		if err != nil {
			return nil, err
		}

		var own domain.ConflictVerdict
		if prev := conflict.Preceding(timeline, occ.Start, ""); prev != nil {
			prevVenue, err := s.venueOf(ctx, venues, prev.VenueID)
			if err != nil {
				return nil, err
			}
			own = s.evaluator.Evaluate(ctx, prev.EndAt, occ.Start, prevVenue, venue)
			if own.Alert {
				eval.report.Entries = append(eval.report.Entries, reportEntry(userID, prev, own))
			}
		}
		eval.own[userID] = own

		if next := conflict.Following(timeline, occ.End, ""); next != nil {
			nextVenue, err := s.venueOf(ctx, venues, next.VenueID)
			if err != nil {
				return nil, err
			}
			verdict := s.evaluator.Evaluate(ctx, occ.End, next.StartAt, venue, nextVenue)
			eval.neighbors = append(eval.neighbors, domain.VerdictUpdate{
				GameID:  next.ID,
				UserID:  userID,
				Verdict: verdict,
			})
			if verdict.Alert {
				eval.report.Entries = append(eval.report.Entries, reportEntry(userID, next, verdict))
			}
		}
	}

	return eval, nil
}

func (s *GameService) commitCreate(
	ctx context.Context,
	input domain.SubmitGameInput,
	venue *domain.Venue,
	category *domain.Category,
	creator *domain.User,
	users map[string]*domain.User,
	occs []recurrence.Occurrence,
	primary *occurrenceEval,
	venues map[string]*domain.Venue,
) (*domain.SubmitResult, error) {
	now := time.Now().UTC()

	var series *domain.Series
	if input.Recurrence != domain.RecurrenceNone {
		series = &domain.Series{
			ID:         uuid.New().String(),
			Recurrence: input.Recurrence,
			StartDate:  input.StartAt,
			EndDate:    *input.RecurrenceEnd,
		}
	}

	games := make([]*domain.Game, 0, len(occs))
	partSets := make([][]*domain.Participant, 0, len(occs))
	neighbors := append([]domain.VerdictUpdate{}, primary.neighbors...)

	for i, occ := range occs {
		game := &domain.Game{
			ID:         uuid.New().String(),
			Name:       input.Name,
			CategoryID: input.CategoryID,
			VenueID:    input.VenueID,
			CreatorID:  input.CreatorID,
			StartAt:    occ.Start,
			EndAt:      occ.End,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if series != nil {
			game.SeriesID = &series.ID
		}

		eval := primary
		if i > 0 {
			var err error
			eval, err = s.evaluateOccurrence(ctx, venues, "", occ, venue, participantUserIDs(input))
			if err != nil {
				return nil, err
			}
			neighbors = append(neighbors, eval.neighbors...)
			// The confirmation gate only weighs the primary occurrence, but
			// the caller still gets to see which future dates are tight.
			primary.report.Entries = append(primary.report.Entries, eval.report.Entries...)
		}

		games = append(games, game)
		partSets = append(partSets, buildParticipants(game.ID, input, eval.own))
	}

	if series != nil {
		if err := s.gameRepo.CreateSeries(ctx, series, games, partSets, neighbors); err != nil {
			return nil, fmt.Errorf("create series: %w", err)
		}
	} else {
		if err := s.gameRepo.Create(ctx, games[0], partSets[0], neighbors); err != nil {
			return nil, fmt.Errorf("create game: %w", err)
		}
	}

	s.logger.Info("game created",
		logger.String("game_id", games[0].ID),
		logger.String("creator_id", input.CreatorID),
		logger.Int("occurrences", len(games)),
		logger.Int("alerts", len(primary.report.Entries)),
	)

	go s.announceSubmitted(context.WithoutCancel(ctx), games[0], category, venue, creator, users, nil, primary)

	return &domain.SubmitResult{
		Game:        games[0],
		Occurrences: len(games),
		Report:      alertsOrNil(primary.report),
	}, nil
}

func (s *GameService) commitUpdate(
	ctx context.Context,
	existing *domain.Game,
	currentParts []*domain.Participant,
	input domain.SubmitGameInput,
	venue *domain.Venue,
	category *domain.Category,
	creator *domain.User,
	users map[string]*domain.User,
	occ recurrence.Occurrence,
	primary *occurrenceEval,
	venues map[string]*domain.Venue,
) (*domain.SubmitResult, error) {
	updated := *existing
	updated.Name = input.Name
	updated.CategoryID = input.CategoryID
	updated.VenueID = input.VenueID
	updated.StartAt = occ.Start
	updated.EndAt = occ.End
	updated.UpdatedAt = time.Now().UTC()

	upsert := buildParticipants(existing.ID, input, primary.own)

	newSet := make(map[string]bool, len(upsert))
	for _, p := range upsert {
		newSet[p.UserID] = true
	}
	current := make(map[string]bool, len(currentParts))
	var removed []string
	for _, p := range currentParts {
		current[p.UserID] = true
		if !newSet[p.UserID] {
			removed = append(removed, p.UserID)
		}
	}

	neighborSet := map[string]domain.VerdictUpdate{}
	for _, u := range primary.neighbors {
		neighborSet[u.GameID+"/"+u.UserID] = u
	}

	// Rewiring the old slot: the game that used to follow the old time
	// window gets its preceding pair recomputed against the updated world.
	excluded := map[string]bool{existing.ID: true}
	for userID := range current {
		var inserted *domain.Game
		if newSet[userID] {
			inserted = &updated
		}
		timeline, err := s.userTimeline(ctx, userID, existing.StartAt, excluded, inserted)
		if err != nil {
			return nil, err
		}
		oldNext := conflict.Following(timeline, existing.EndAt, updated.ID)
		if oldNext == nil {
			continue
		}
		key := oldNext.ID + "/" + userID
		if _, done := neighborSet[key]; done {
			continue
		}
		verdict, err := s.precedingVerdict(ctx, venues, timeline, oldNext)
		if err != nil {
			return nil, err
		}
		neighborSet[key] = domain.VerdictUpdate{GameID: oldNext.ID, UserID: userID, Verdict: verdict}
	}

	if err := s.gameRepo.Update(ctx, &updated, upsert, removed, collectUpdates(neighborSet)); err != nil {
		return nil, fmt.Errorf("update game: %w", err)
	}

	s.logger.Info("game updated",
		logger.String("game_id", updated.ID),
		logger.Int("removed_participants", len(removed)),
		logger.Int("alerts", len(primary.report.Entries)),
	)

	go s.announceSubmitted(context.WithoutCancel(ctx), &updated, category, venue, creator, users, current, primary)

	return &domain.SubmitResult{
		Game:        &updated,
		Occurrences: 1,
		Report:      alertsOrNil(primary.report),
	}, nil
}

// userTimeline loads one identity's same-day games ordered by start,
// dropping excluded ids and splicing in a not-yet-persisted game when it
// falls on the same day.
func (s *GameService) userTimeline(ctx context.Context, userID string, day time.Time, excluded map[string]bool, inserted *domain.Game) ([]*domain.Game, error) {
	games, err := s.gameRepo.ListForUserOn(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("list games for %s: %w", userID, err)
	}

	timeline := make([]*domain.Game, 0, len(games)+1)
	for _, g := range games {
		if excluded[g.ID] {
			continue
		}
		timeline = append(timeline, g)
	}

	if inserted != nil && sameDay(inserted.StartAt, day) {
		timeline = append(timeline, inserted)
		sort.Slice(timeline, func(i, j int) bool {
			return timeline[i].StartAt.Before(timeline[j].StartAt)
		})
	}

	return timeline, nil
}

// precedingVerdict evaluates a game's arrival pair against its preceding
// neighbor in the given timeline. Without a preceding game the verdict is
// neutral.
func (s *GameService) precedingVerdict(ctx context.Context, venues map[string]*domain.Venue, timeline []*domain.Game, game *domain.Game) (domain.ConflictVerdict, error) {
	prev := conflict.Preceding(timeline, game.StartAt, game.ID)
	if prev == nil {
		return domain.ConflictVerdict{}, nil
	}

	prevVenue, err := s.venueOf(ctx, venues, prev.VenueID)
	if err != nil {
		return domain.ConflictVerdict{}, err
	}
	gameVenue, err := s.venueOf(ctx, venues, game.VenueID)
	if err != nil {
		return domain.ConflictVerdict{}, err
	}

	return s.evaluator.Evaluate(ctx, prev.EndAt, game.StartAt, prevVenue, gameVenue), nil
}

func (s *GameService) venueOf(ctx context.Context, cache map[string]*domain.Venue, venueID string) (*domain.Venue, error) {
	if v, ok := cache[venueID]; ok {
		return v, nil
	}
	v, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	cache[venueID] = v
	return v, nil
}

// --- notifications ---

func (s *GameService) announceSubmitted(
	ctx context.Context,
	game *domain.Game,
	category *domain.Category,
	venue *domain.Venue,
	creator *domain.User,
	users map[string]*domain.User,
	previous map[string]bool,
	eval *occurrenceEval,
) {
	action := domain.GameEventCreated
	if previous != nil {
		action = domain.GameEventUpdated
	}
	s.publisher.PublishGameEvent(ctx, domain.GameEvent{
		GameID:   game.ID,
		Name:     game.Name,
		Category: category.Name,
		Venue:    venue.Name,
		StartAt:  game.StartAt,
		EndAt:    game.EndAt,
		Action:   action,
	})

	for userID, user := range users {
		if previous == nil || !previous[userID] {
			s.notifier.NotifyInvitation(ctx, user, game)
		}
	}

	for userID, verdict := range eval.own {
		if !verdict.Alert {
			continue
		}
		user := users[userID]
		if user == nil {
			if userID != creator.ID {
				continue
			}
			user = creator
		}
		s.notifier.NotifyTravelAlert(ctx, user, game, *verdict.TravelTimeMin, *verdict.TimeAvailableMin)
	}
}

// announceDeleted broadcasts the deletion and tells every former
// participant. The rows are already gone, so lookups here are best-effort:
// a failure degrades the payload instead of failing the delete.
func (s *GameService) announceDeleted(ctx context.Context, game *domain.Game, userIDs []string) {
	event := domain.GameEvent{
		GameID:  game.ID,
		Name:    game.Name,
		StartAt: game.StartAt,
		EndAt:   game.EndAt,
		Action:  domain.GameEventDeleted,
	}
	if category, err := s.categoryRepo.GetByID(ctx, game.CategoryID); err == nil {
		event.Category = category.Name
	} else {
		s.logger.Warn("resolve category for deletion event",
			logger.String("game_id", game.ID),
			logger.String("error", err.Error()),
		)
	}
	if venue, err := s.venueRepo.GetByID(ctx, game.VenueID); err == nil {
		event.Venue = venue.Name
	} else {
		s.logger.Warn("resolve venue for deletion event",
			logger.String("game_id", game.ID),
			logger.String("error", err.Error()),
		)
	}
	s.publisher.PublishGameEvent(ctx, event)

	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		s.logger.Warn("load users for cancellation notice",
			logger.String("game_id", game.ID),
			logger.String("error", err.Error()),
		)
		return
	}
	for _, u := range users {
		s.notifier.NotifyCancelled(ctx, u, game)
	}
}

// --- helpers ---

func participantUserIDs(input domain.SubmitGameInput) []string {
	ids := make([]string, 0, len(input.Participants)+1)
	ids = append(ids, input.CreatorID)
	for _, p := range input.Participants {
		ids = append(ids, p.UserID)
	}
	return ids
}

func buildParticipants(gameID string, input domain.SubmitGameInput, verdicts map[string]domain.ConflictVerdict) []*domain.Participant {
	parts := make([]*domain.Participant, 0, len(input.Participants)+1)

	creatorRow := &domain.Participant{GameID: gameID, UserID: input.CreatorID}
	creatorRow.ApplyVerdict(verdicts[input.CreatorID])
	parts = append(parts, creatorRow)

	for _, p := range input.Participants {
		row := &domain.Participant{GameID: gameID, UserID: p.UserID, IsTrainer: p.IsTrainer}
		row.ApplyVerdict(verdicts[p.UserID])
		parts = append(parts, row)
	}

	return parts
}

func reportEntry(userID string, neighbor *domain.Game, v domain.ConflictVerdict) domain.ConflictEntry {
	entry := domain.ConflictEntry{
		UserID:           userID,
		NeighborGameID:   neighbor.ID,
		NeighborGameName: neighbor.Name,
	}
	if v.TravelTimeMin != nil {
		entry.TravelTimeMin = int(math.Ceil(*v.TravelTimeMin))
	}
	if v.TimeAvailableMin != nil {
		entry.TimeAvailableMin = int(math.Ceil(*v.TimeAvailableMin))
	}
	return entry
}

func collectUpdates(set map[string]domain.VerdictUpdate) []domain.VerdictUpdate {
	if len(set) == 0 {
		return nil
	}
	updates := make([]domain.VerdictUpdate, 0, len(set))
	for _, u := range set {
		updates = append(updates, u)
	}
	return updates
}

func alertsOrNil(report *domain.ConflictReport) *domain.ConflictReport {
	if report.HasAlerts() {
		return report
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
