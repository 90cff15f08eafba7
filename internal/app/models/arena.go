package models

import (
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/dto/responses"
	"time"
)

type Arena struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	IntervalMinutes int       `json:"interval_minutes"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	IsDefault       bool      `json:"is_default"`
	Status          int       `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// WithDefaults fills an unset window or interval with the arena defaults.
func (a Arena) WithDefaults() Arena {
	if a.StartTime == "" {
		a.StartTime = constvars.ArenaDefaultStartTime
	}
	if a.EndTime == "" {
		a.EndTime = constvars.ArenaDefaultEndTime
	}
	if a.IntervalMinutes == 0 {
		a.IntervalMinutes = constvars.ArenaDefaultIntervalMinutes
	}
	return a
}

func (a Arena) ConvertIntoResponse() responses.Arena {
	a = a.WithDefaults()
	return responses.Arena{
		ID:              a.ID,
		Name:            a.Name,
		IntervalMinutes: a.IntervalMinutes,
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		IsDefault:       a.IsDefault,
	}
}
