package model

import "time"

// SleepLog records one sleep period.
//
// SleepDate is the calendar day the night belongs to (stored at midnight);
// StartTime and EndTime are full timestamps. No ordering between start and
// end is enforced — the source app accepted whatever the form sent, and we
// keep that contract rather than invent validation it never had.
type SleepLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	SleepDate time.Time `json:"sleepDate"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Quality   *int64    `json:"quality"` // nil = not rated, no enforced range
}
