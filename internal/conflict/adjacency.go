package conflict

import (
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

// Adjacency scans operate on one identity's same-day games sorted ascending
// by start time. The set is assumed non-overlapping; behavior on overlapping
// input is undefined (see the adjacency tests for the documented fixture).

// Preceding returns the game with the latest end time at or before refStart,
// or nil. excludeID skips the game under evaluation when re-checking an
// update.
func Preceding(games []*domain.Game, refStart time.Time, excludeID string) *domain.Game {
	var prev *domain.Game
	for _, g := range games {
		if g.ID == excludeID {
			continue
		}
		if g.EndAt.After(refStart) {
			break
		}
		prev = g
	}
	return prev
}

// Following returns the first game starting at or after refEnd, or nil.
func Following(games []*domain.Game, refEnd time.Time, excludeID string) *domain.Game {
	for _, g := range games {
		if g.ID == excludeID {
			continue
		}
		if !g.StartAt.Before(refEnd) {
			return g
		}
	}
	return nil
}
