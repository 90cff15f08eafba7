package requests

type UpsertCategory struct {
	ArenaID       int64  `json:"arena_id" validate:"required,gt=0"`
	SlotID        string `json:"timeslot_id" validate:"required,slot_id"`
	CategoryID    int64  `json:"category_id" validate:"required,gt=0"`
	ScheduledDate string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpsertComment struct {
	ArenaID int64  `json:"arena_id" validate:"required,gt=0"`
	SlotID  string `json:"timeslot_id" validate:"required,slot_id"`
	Comment string `json:"comment" validate:"max=255"`
}

// CopyRange stamps CategoryID over every slot between StartTime and EndTime.
type CopyRange struct {
	ArenaID         int64  `json:"arena_id" validate:"required,gt=0"`
	CategoryID      int64  `json:"category_id" validate:"required,gt=0"`
	ScheduledDate   string `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	StartTime       string `json:"start_time" validate:"required,clock"`
	EndTime         string `json:"end_time" validate:"required,clock"`
	IntervalMinutes int    `json:"interval_minutes" validate:"slot_interval"`
}

// CopyRangeBySlot is the slot-addressed form sent by the grid: the range runs
// from the start of SlotID to the end of EndSlotID on the same day.
type CopyRangeBySlot struct {
	ArenaID         int64  `json:"arena_id" validate:"required,gt=0"`
	CategoryID      int64  `json:"category_id" validate:"required,gt=0"`
	SlotID          string `json:"timeslot_id" validate:"required,slot_id"`
	EndSlotID       string `json:"end_timeslot" validate:"required,slot_id"`
	IntervalMinutes int    `json:"interval_time" validate:"slot_interval"`
}

type CopyWeek struct {
	ArenaID         int64  `json:"arena_id" validate:"required,gt=0"`
	SourceWeekStart string `json:"begin" validate:"required,datetime=2006-01-02"`
	SourceWeekNo    int    `json:"copy_week_no" validate:"required,min=1,max=53"`
	TargetWeekNo    int    `json:"copy_to_week" validate:"required,min=1,max=53"`
	Year            int    `json:"year" validate:"omitempty,min=1970,max=9999"`
}

type ExportWeek struct {
	ArenaID int64 `json:"arena_id" validate:"required,gt=0"`
	Week    int   `json:"week" validate:"required,min=1,max=53"`
	Year    int   `json:"year" validate:"required,min=1970,max=9999"`
}
