package constvars

const (
	ResponseUnknown = "unknown"

	GetArenaSuccessMessage        = "arenas retrieved successfully"
	GetArenaSlotsSuccessMessage   = "arena slots generated successfully"
	GetCategorySuccessMessage     = "categories retrieved successfully"
	GetTimesheetSuccessMessage    = "timesheet retrieved successfully"
	UpsertCategorySuccessMessage  = "slot category saved successfully"
	UpsertCommentSuccessMessage   = "slot comment saved successfully"
	CopyRangeSuccessMessage       = "slots copied successfully"
	CopyWeekSuccessMessage        = "week copied successfully"
	CopyWeekPartialFailureMessage = "week copied with failures"
	ExportWeekSuccessMessage      = "week exported successfully"
	EncodeSlotIDSuccessMessage    = "slot id encoded successfully"
	DecodeSlotIDSuccessMessage    = "slot id decoded successfully"
	GetWeekRangeSuccessMessage    = "week range retrieved successfully"
)
