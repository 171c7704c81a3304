package recurrence

import (
	"testing"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestExpand_None_SingleOccurrence(t *testing.T) {
	start := mustDate(t, "2024-01-01T10:00:00Z")
	end := mustDate(t, "2024-01-01T11:00:00Z")

	occs, err := Expand(start, end, domain.RecurrenceNone, time.Time{})

	require.NoError(t, err)
	require.Len(t, occs, 1)
	assert.Equal(t, start, occs[0].Start)
	assert.Equal(t, end, occs[0].End)
}

func TestExpand_Weekly_InclusiveBoundary(t *testing.T) {
	start := mustDate(t, "2024-01-01T10:00:00Z")
	end := mustDate(t, "2024-01-01T11:00:00Z")
	until := mustDate(t, "2024-01-15T00:00:00Z")

	occs, err := Expand(start, end, domain.RecurrenceWeekly, until)

	require.NoError(t, err)
	// Jan 15 starts on the boundary date and is included.
	require.Len(t, occs, 3)
	assert.Equal(t, mustDate(t, "2024-01-01T10:00:00Z"), occs[0].Start)
	assert.Equal(t, mustDate(t, "2024-01-08T10:00:00Z"), occs[1].Start)
	assert.Equal(t, mustDate(t, "2024-01-15T10:00:00Z"), occs[2].Start)
	assert.Equal(t, mustDate(t, "2024-01-15T11:00:00Z"), occs[2].End)
}

func TestExpand_Daily(t *testing.T) {
	start := mustDate(t, "2024-03-10T08:00:00Z")
	end := mustDate(t, "2024-03-10T09:30:00Z")
	until := mustDate(t, "2024-03-12T00:00:00Z")

	occs, err := Expand(start, end, domain.RecurrenceDaily, until)

	require.NoError(t, err)
	require.Len(t, occs, 3)
	for i, occ := range occs {
		assert.Equal(t, start.AddDate(0, 0, i), occ.Start)
		assert.Equal(t, 90*time.Minute, occ.End.Sub(occ.Start))
	}
}

func TestExpand_Biweekly(t *testing.T) {
	start := mustDate(t, "2024-01-01T10:00:00Z")
	end := mustDate(t, "2024-01-01T11:00:00Z")
	until := mustDate(t, "2024-02-01T00:00:00Z")

	occs, err := Expand(start, end, domain.RecurrenceBiweekly, until)

	require.NoError(t, err)
	require.Len(t, occs, 3)
	assert.Equal(t, mustDate(t, "2024-01-15T10:00:00Z"), occs[1].Start)
	assert.Equal(t, mustDate(t, "2024-01-29T10:00:00Z"), occs[2].Start)
}

func TestExpand_Monthly_ClampsToEndOfMonth(t *testing.T) {
	start := mustDate(t, "2024-01-31T10:00:00Z")
	end := mustDate(t, "2024-01-31T11:00:00Z")
	until := mustDate(t, "2024-04-30T00:00:00Z")

	occs, err := Expand(start, end, domain.RecurrenceMonthly, until)

	require.NoError(t, err)
	require.Len(t, occs, 4)
	// 2024 is a leap year; the day clamps per target month and recovers
	// where the 31st exists again.
	assert.Equal(t, mustDate(t, "2024-01-31T10:00:00Z"), occs[0].Start)
	assert.Equal(t, mustDate(t, "2024-02-29T10:00:00Z"), occs[1].Start)
	assert.Equal(t, mustDate(t, "2024-03-31T10:00:00Z"), occs[2].Start)
	assert.Equal(t, mustDate(t, "2024-04-30T10:00:00Z"), occs[3].Start)
}

func TestExpand_Monthly_MidMonthDayPreserved(t *testing.T) {
	start := mustDate(t, "2024-01-15T18:00:00Z")
	end := mustDate(t, "2024-01-15T19:00:00Z")
	until := mustDate(t, "2024-03-15T00:00:00Z")

	occs, err := Expand(start, end, domain.RecurrenceMonthly, until)

	require.NoError(t, err)
	require.Len(t, occs, 3)
	for _, occ := range occs {
		assert.Equal(t, 15, occ.Start.Day())
		assert.Equal(t, 18, occ.Start.Hour())
	}
}

func TestExpand_BoundaryBeforeFirstStep(t *testing.T) {
	start := mustDate(t, "2024-01-01T10:00:00Z")
	end := mustDate(t, "2024-01-01T11:00:00Z")
	until := mustDate(t, "2024-01-05T00:00:00Z")

	occs, err := Expand(start, end, domain.RecurrenceWeekly, until)

	require.NoError(t, err)
	require.Len(t, occs, 1)
}

func TestExpand_UnknownKind(t *testing.T) {
	start := mustDate(t, "2024-01-01T10:00:00Z")
	end := mustDate(t, "2024-01-01T11:00:00Z")

	_, err := Expand(start, end, "fortnightly", start)

	require.Error(t, err)
}

func TestExpand_Deterministic(t *testing.T) {
	start := mustDate(t, "2024-05-03T09:00:00Z")
	end := mustDate(t, "2024-05-03T10:00:00Z")
	until := mustDate(t, "2024-08-01T00:00:00Z")

	first, err := Expand(start, end, domain.RecurrenceWeekly, until)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Expand(start, end, domain.RecurrenceWeekly, until)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
