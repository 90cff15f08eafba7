package models

import (
	"arena-scheduler-service/internal/app/services/core/slot"
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/dto/responses"
	"time"
)

// TimesheetEntry assigns a category to one slot of one arena. (ArenaID, SlotID)
// is unique and ScheduledDate always equals the date encoded in SlotID.
type TimesheetEntry struct {
	ID            int64
	ArenaID       int64
	SlotID        string
	CategoryID    int64
	Comment       string
	ScheduledDate time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TimesheetDetail is an entry joined with its category's display fields.
type TimesheetDetail struct {
	TimesheetEntry
	CategoryName      string
	CategoryColor     string
	CategoryTextColor string
}

func (e TimesheetEntry) ConvertIntoResponse() responses.TimesheetEntry {
	return responses.TimesheetEntry{
		ID:            e.ID,
		ArenaID:       e.ArenaID,
		SlotID:        e.SlotID,
		CategoryID:    e.CategoryID,
		Comment:       e.Comment,
		ScheduledDate: e.ScheduledDate.Format(constvars.DateLayout),
		Display:       slot.DecodeID(slot.ID(e.SlotID)).Display,
	}
}

func (d TimesheetDetail) ConvertIntoResponse() responses.TimesheetEntry {
	response := d.TimesheetEntry.ConvertIntoResponse()
	response.CategoryName = d.CategoryName
	response.CategoryColor = d.CategoryColor
	response.CategoryTextColor = d.CategoryTextColor
	return response
}
