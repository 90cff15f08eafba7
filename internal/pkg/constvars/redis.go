package constvars

const (
	RedisKeyArenaList              = "arena_scheduler:arenas"
	RedisKeyCategoryList           = "arena_scheduler:categories"
	RedisKeyTimesheetVersionFormat = "arena_scheduler:timesheet:%d:version"
	RedisKeyTimesheetRangeFormat   = "arena_scheduler:timesheet:%d:v%d:%s:%s"
)
