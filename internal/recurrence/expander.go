package recurrence

import (
	"fmt"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

// Occurrence is one generated instance of a recurring game.
type Occurrence struct {
	Start time.Time
	End   time.Time
}

// step returns the fixed step for a recurrence kind, or ok=false for
// monthly recurrence, which uses calendar-month arithmetic instead.
func step(kind string) (time.Duration, bool) {
	switch kind {
	case domain.RecurrenceDaily:
		return 24 * time.Hour, true
	case domain.RecurrenceWeekly:
		return 7 * 24 * time.Hour, true
	case domain.RecurrenceBiweekly:
		return 14 * 24 * time.Hour, true
	}
	return 0, false
}

// IsValidKind reports whether kind names a supported recurrence.
func IsValidKind(kind string) bool {
	switch kind {
	case domain.RecurrenceNone, domain.RecurrenceDaily, domain.RecurrenceWeekly,
		domain.RecurrenceBiweekly, domain.RecurrenceMonthly:
		return true
	}
	return false
}

// Expand turns a base occurrence and a recurrence kind into the ordered
// sequence of occurrences up to and including the boundary date. The base
// occurrence is always element 0. The boundary is inclusive through the end
// of untilDate's calendar day: an occurrence starting any time on that date
// is generated.
//
// Monthly recurrence preserves the day of month, clamping to the last valid
// day of shorter months (Jan 31 -> Feb 28/29 -> Mar 31).
//
// Expand is pure: same inputs always yield the same sequence.
func Expand(start, end time.Time, kind string, untilDate time.Time) ([]Occurrence, error) {
	if kind == domain.RecurrenceNone {
		return []Occurrence{{Start: start, End: end}}, nil
	}
	if !IsValidKind(kind) {
		return nil, fmt.Errorf("unknown recurrence kind %q", kind)
	}

	// Strictly before the next midnight == inclusive through 23:59 of the
	// boundary date.
	y, m, d := untilDate.Date()
	bound := time.Date(y, m, d, 0, 0, 0, 0, start.Location()).AddDate(0, 0, 1)

	duration := end.Sub(start)
	occs := []Occurrence{{Start: start, End: end}}

	if kind == domain.RecurrenceMonthly {
		for n := 1; ; n++ {
			occStart := addMonths(start, n)
			if !occStart.Before(bound) {
				break
			}
			occs = append(occs, Occurrence{Start: occStart, End: occStart.Add(duration)})
		}
		return occs, nil
	}

	delta, _ := step(kind)
	for occStart := start.Add(delta); occStart.Before(bound); occStart = occStart.Add(delta) {
		occs = append(occs, Occurrence{Start: occStart, End: occStart.Add(duration)})
	}
	return occs, nil
}

// addMonths advances t by n calendar months, clamping the day of month to
// the last valid day of the target month. The offset is always computed from
// the base date, so a 31st stays a 31st in months that have one.
func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	target := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := daysIn(target.Year(), target.Month())
	if day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
