package responses

type TimesheetEntry struct {
	ID                int64  `json:"id"`
	ArenaID           int64  `json:"arena_id"`
	SlotID            string `json:"timeslot_id"`
	CategoryID        int64  `json:"category_id"`
	Comment           string `json:"comment"`
	ScheduledDate     string `json:"scheduled_date"`
	Display           string `json:"display"`
	CategoryName      string `json:"category_name,omitempty"`
	CategoryColor     string `json:"category_color,omitempty"`
	CategoryTextColor string `json:"category_text_color,omitempty"`
}

type CopyRange struct {
	Touched []TimesheetEntry `json:"touched"`
	Day     []TimesheetEntry `json:"day"`
}

type CopyWeekResult struct {
	Status    int    `json:"status"`
	Copied    int    `json:"copied"`
	Failed    int    `json:"failed"`
	WeekDelta int    `json:"week_delta"`
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
}

type WeekExport struct {
	ObjectKey string `json:"object_key"`
	Bucket    string `json:"bucket"`
	Entries   int    `json:"entries"`
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
}
