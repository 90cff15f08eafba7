package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingOperationKey     = "operation"
	LoggingErrorCodeKey     = "error_code"
	LoggingErrorMessageKey  = "error_message"
	LoggingRequestKey       = "request"
	LoggingResponseCountKey = "response_count"

	LoggingArenaIDKey       = "arena_id"
	LoggingCategoryIDKey    = "category_id"
	LoggingSlotIDKey        = "slot_id"
	LoggingTimesheetIDKey   = "timesheet_id"
	LoggingScheduledDateKey = "scheduled_date"
	LoggingWeekDeltaKey     = "week_delta"
	LoggingSourceCountKey   = "source_count"
	LoggingCopiedCountKey   = "copied_count"
	LoggingFailedCountKey   = "failed_count"
	LoggingCacheKey         = "cache_key"
	LoggingEventKey         = "event"
	LoggingObjectKey        = "object_key"
	LoggingPlanKey          = "plan"
)
