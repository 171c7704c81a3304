package domain

import "time"

// Recurrence kinds accepted on submission.
const (
	RecurrenceNone     = ""
	RecurrenceDaily    = "daily"
	RecurrenceWeekly   = "weekly"
	RecurrenceBiweekly = "biweekly"
	RecurrenceMonthly  = "monthly"
)

// Series groups the games generated from one recurring submission. The
// recurrence kind is fixed for the life of the series.
type Series struct {
	ID         string    `json:"id"`
	Recurrence string    `json:"recurrence"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}
