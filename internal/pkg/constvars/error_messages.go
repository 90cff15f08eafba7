package constvars

// Validation messages, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"min":           "must be at least %s",
	"max":           "must be at most %s",
	"gt":            "must be greater than %s",
	"oneof":         "must be one of: %s",
	"datetime":      "must be a date formatted as %s",
	"slot_id":       "must be a 16 digit slot id",
	"clock":         "must be a time formatted as HH:MM",
	"slot_interval": "must be one of 15, 30 or 60 minutes",
}

var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gt":       true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientInvalidInterval               = "slot interval must be 15, 30 or 60 minutes"
	ErrClientInvalidTimeFormat             = "time must be formatted as HH:MM"
	ErrClientInvalidWeek                   = "week number must be between 1 and 53"
	ErrClientNotFound                      = "%s not found"
	ErrClientConcurrentModification        = "the slot was modified by another request, please retry"
	ErrClientCapabilityDenied              = "your current plan does not allow this action"
	ErrClientInvalidAPIKey                 = "invalid API key"
	ErrClientAPIKeyRequired                = "API key is required"
	ErrClientTooManyRequests               = "too many requests, you are blocked temporarily"
)

// Error messages for developers
const (
	ErrDevValidationFailed            = "validation failed"
	ErrDevCannotParseJSON             = "cannot parse JSON"
	ErrDevCannotMarshalJSON           = "cannot marshal JSON"
	ErrDevURLParamIDValidationFailed  = "url param %s validation failed"
	ErrDevServerDeadlineExceeded      = "deadline exceeded"
	ErrDevServerProcess               = "server process failed"
	ErrDevInvalidInterval             = "INVALID_INTERVAL"
	ErrDevInvalidTimeFormat           = "INVALID_TIME_FORMAT"
	ErrDevInvalidWeek                 = "INVALID_WEEK"
	ErrDevNotFound                    = "NOT_FOUND"
	ErrDevStorage                     = "STORAGE_ERROR"
	ErrDevConcurrentModification      = "CONCURRENT_MODIFICATION"
	ErrDevCapabilityDenied            = "CAPABILITY_DENIED"
	ErrDevInvalidAPIKey               = "INVALID_API_KEY"
	ErrDevAPIKeyRequired              = "API_KEY_REQUIRED"
	ErrDevTooManyRequests             = "TOO_MANY_REQUESTS"
	ErrDevDBFailedToFindData          = "failed to find data"
	ErrDevDBFailedToInsertData        = "failed to insert data"
	ErrDevDBFailedToUpdateData        = "failed to update data"
	ErrDevDBFailedToIterateDataset    = "failed to iterate dataset"
	ErrDevDBFailedToBeginTransaction  = "failed to begin transaction"
	ErrDevDBFailedToCommitTransaction = "failed to commit transaction"
	ErrDevRedisGetData                = "failed to get data from redis"
	ErrDevRedisGetNoData              = "no data found in redis for key %s"
	ErrDevRedisSetData                = "failed to set data to redis"
	ErrDevRedisDeleteData             = "failed to delete data from redis"
	ErrDevRedisIncrementValue         = "failed to increment value in redis"
	ErrDevMinioFailedToCreateObject   = "failed to create object in bucket %s"
	ErrDevRabbitMQPublishMessage      = "failed to publish message to queue %s"
	ErrDevRabbitMQOpenChannel         = "failed to open rabbitmq channel"
)
