package models

import "time"

type TimesheetEvent struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	ArenaID    int64       `json:"arena_id"`
	RequestID  string      `json:"request_id,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// WeekSnapshot is the document written by a week export.
type WeekSnapshot struct {
	ArenaID    int64       `json:"arena_id"`
	Week       int         `json:"week"`
	Year       int         `json:"year"`
	WeekStart  string      `json:"week_start"`
	WeekEnd    string      `json:"week_end"`
	ExportedAt time.Time   `json:"exported_at"`
	Entries    interface{} `json:"entries"`
}
