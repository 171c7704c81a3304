package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const gameColumns = `id, name, category_id, venue_id, creator_id, series_id, start_at, end_at, created_at, updated_at`

type GameRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGameRepo(db *dbpg.DB) *GameRepository {
	return &GameRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *GameRepository) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	query := `SELECT ` + gameColumns + `
			  FROM games
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}

	g, err := scanGame(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGameNotFound
		}
		return nil, fmt.Errorf("scan game: %w", err)
	}

	return g, nil
}

func (r *GameRepository) ListForUserOn(ctx context.Context, userID string, day time.Time) ([]*domain.Game, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	// Every game materializes a participant row for its creator, so one
	// join covers both roles.
	query := `SELECT g.id, g.name, g.category_id, g.venue_id, g.creator_id, g.series_id,
					 g.start_at, g.end_at, g.created_at, g.updated_at
			  FROM games g
			  JOIN participants p ON p.game_id = g.id
			  WHERE p.user_id = $1 AND g.start_at >= $2 AND g.start_at < $3
			  ORDER BY g.start_at`

	return r.listGames(ctx, query, userID, dayStart, dayEnd)
}

func (r *GameRepository) ListByVenueFrom(ctx context.Context, venueID string, from time.Time) ([]*domain.Game, error) {
	query := `SELECT ` + gameColumns + `
			  FROM games
			  WHERE venue_id = $1 AND start_at >= $2
			  ORDER BY start_at`

	return r.listGames(ctx, query, venueID, from)
}

func (r *GameRepository) ListSeriesGamesFrom(ctx context.Context, seriesID string, from time.Time) ([]*domain.Game, error) {
	query := `SELECT ` + gameColumns + `
			  FROM games
			  WHERE series_id = $1 AND start_at >= $2
			  ORDER BY start_at`

	return r.listGames(ctx, query, seriesID, from)
}

func (r *GameRepository) Participants(ctx context.Context, gameID string) ([]*domain.Participant, error) {
	query := `SELECT game_id, user_id, is_trainer, alert, travel_time_min, time_available_min, travel_pending
			  FROM participants
			  WHERE game_id = $1
			  ORDER BY user_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var res []*domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err = rows.Scan(&p.GameID, &p.UserID, &p.IsTrainer, &p.Alert, &p.TravelTimeMin, &p.TimeAvailableMin, &p.TravelPending); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

func (r *GameRepository) Create(ctx context.Context, game *domain.Game, parts []*domain.Participant, neighbors []domain.VerdictUpdate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = insertGame(ctx, tx, game); err != nil {
		return err
	}
	if err = insertParticipants(ctx, tx, parts); err != nil {
		return err
	}
	if err = applyVerdicts(ctx, tx, neighbors); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *GameRepository) CreateSeries(ctx context.Context, series *domain.Series, games []*domain.Game, parts [][]*domain.Participant, neighbors []domain.VerdictUpdate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	seriesQuery := `INSERT INTO series (id, recurrence, start_date, end_date)
					VALUES ($1, $2, $3, $4)`
	if _, err = tx.ExecContext(ctx, seriesQuery, series.ID, series.Recurrence, series.StartDate, series.EndDate); err != nil {
		return fmt.Errorf("insert series: %w", err)
	}

	for i, game := range games {
		if err = insertGame(ctx, tx, game); err != nil {
			return err
		}
		if err = insertParticipants(ctx, tx, parts[i]); err != nil {
			return err
		}
	}

	if err = applyVerdicts(ctx, tx, neighbors); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *GameRepository) Update(ctx context.Context, game *domain.Game, upsert []*domain.Participant, removedUserIDs []string, neighbors []domain.VerdictUpdate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE games
			  SET name = $2, category_id = $3, venue_id = $4, start_at = $5, end_at = $6, updated_at = $7
			  WHERE id = $1`
	res, err := tx.ExecContext(ctx, query, game.ID, game.Name, game.CategoryID, game.VenueID, game.StartAt, game.EndAt, game.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("game rows affected: %w", err)
	}
	if rows == 0 {
		// Re-validate existence before writing: the game can vanish
		// between the conflict check and the commit.
		return domain.ErrGameNotFound
	}

	if len(removedUserIDs) > 0 {
		removeQuery := `DELETE FROM participants WHERE game_id = $1 AND user_id = ANY($2)`
		if _, err = tx.ExecContext(ctx, removeQuery, game.ID, pq.Array(removedUserIDs)); err != nil {
			return fmt.Errorf("remove participants: %w", err)
		}
	}

	if err = insertParticipants(ctx, tx, upsert); err != nil {
		return err
	}
	if err = applyVerdicts(ctx, tx, neighbors); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *GameRepository) Delete(ctx context.Context, gameIDs []string, seriesID *string, neighbors []domain.VerdictUpdate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Participant rows go with their games via ON DELETE CASCADE.
	if _, err = tx.ExecContext(ctx, `DELETE FROM games WHERE id = ANY($1)`, pq.Array(gameIDs)); err != nil {
		return fmt.Errorf("delete games: %w", err)
	}

	if seriesID != nil {
		seriesQuery := `DELETE FROM series s
						WHERE s.id = $1
						  AND NOT EXISTS (SELECT 1 FROM games WHERE series_id = s.id)`
		if _, err = tx.ExecContext(ctx, seriesQuery, *seriesID); err != nil {
			return fmt.Errorf("delete series: %w", err)
		}
	}

	if err = applyVerdicts(ctx, tx, neighbors); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *GameRepository) SaveVerdicts(ctx context.Context, updates []domain.VerdictUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = applyVerdicts(ctx, tx, updates); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *GameRepository) ListPendingTravelChecks(ctx context.Context, from time.Time, limit int) ([]*domain.PendingCheck, error) {
	query := `SELECT p.game_id, p.user_id
			  FROM participants p
			  JOIN games g ON g.id = p.game_id
			  WHERE p.travel_pending AND g.start_at >= $1
			  ORDER BY g.start_at
			  LIMIT $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending checks: %w", err)
	}
	defer rows.Close()

	var res []*domain.PendingCheck
	for rows.Next() {
		var c domain.PendingCheck
		if err = rows.Scan(&c.GameID, &c.UserID); err != nil {
			return nil, fmt.Errorf("scan pending check: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *GameRepository) listGames(ctx context.Context, query string, args ...any) ([]*domain.Game, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var res []*domain.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		res = append(res, g)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (*domain.Game, error) {
	var g domain.Game
	if err := row.Scan(
		&g.ID, &g.Name, &g.CategoryID, &g.VenueID, &g.CreatorID,
		&g.SeriesID, &g.StartAt, &g.EndAt, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &g, nil
}

func insertGame(ctx context.Context, tx *sql.Tx, g *domain.Game) error {
	query := `INSERT INTO games (` + gameColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := tx.ExecContext(
		ctx, query,
		g.ID, g.Name, g.CategoryID, g.VenueID, g.CreatorID,
		g.SeriesID, g.StartAt, g.EndAt, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	return nil
}

func insertParticipants(ctx context.Context, tx *sql.Tx, parts []*domain.Participant) error {
	query := `INSERT INTO participants (game_id, user_id, is_trainer, alert, travel_time_min, time_available_min, travel_pending)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (game_id, user_id) DO UPDATE
			  SET is_trainer = EXCLUDED.is_trainer,
				  alert = EXCLUDED.alert,
				  travel_time_min = EXCLUDED.travel_time_min,
				  time_available_min = EXCLUDED.time_available_min,
				  travel_pending = EXCLUDED.travel_pending`

	for _, p := range parts {
		if _, err := tx.ExecContext(
			ctx, query,
			p.GameID, p.UserID, p.IsTrainer, p.Alert,
			p.TravelTimeMin, p.TimeAvailableMin, p.TravelPending,
		); err != nil {
			return fmt.Errorf("insert participant: %w", err)
		}
	}

	return nil
}

func applyVerdicts(ctx context.Context, tx *sql.Tx, updates []domain.VerdictUpdate) error {
	query := `UPDATE participants
			  SET alert = $3, travel_time_min = $4, time_available_min = $5, travel_pending = $6
			  WHERE game_id = $1 AND user_id = $2`

	for _, u := range updates {
		if _, err := tx.ExecContext(
			ctx, query,
			u.GameID, u.UserID,
			u.Verdict.Alert, u.Verdict.TravelTimeMin, u.Verdict.TimeAvailableMin, u.Verdict.Pending,
		); err != nil {
			return fmt.Errorf("apply verdict: %w", err)
		}
	}

	return nil
}
