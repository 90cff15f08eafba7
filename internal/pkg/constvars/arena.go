package constvars

// Values applied when an arena row leaves its window or interval unset.
const (
	ArenaDefaultStartTime       = "07:00"
	ArenaDefaultEndTime         = "21:00"
	ArenaDefaultIntervalMinutes = 30
)

const (
	CategoryDefaultTextColor = "#000000"
)

const (
	ExportObjectKeyFormat = "timesheets/%d/%d-W%02d.json"
)

const (
	EventTimesheetCategoryUpserted = "timesheet.category_upserted"
	EventTimesheetCommentUpserted  = "timesheet.comment_upserted"
	EventTimesheetRangeCopied      = "timesheet.range_copied"
	EventTimesheetWeekCopied       = "timesheet.week_copied"
)
