package constvars

const (
	MIMETextPlain       = "text/plain"
	MIMEApplicationJSON = "application/json"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
	HeaderAPIKey      = "x-api-key"
)

const (
	URLParamID     = "id"
	URLParamSlotID = "slot_id"

	QueryParamArenaID   = "arena_id"
	QueryParamStartDate = "start_date"
	QueryParamEndDate   = "end_date"
	QueryParamDate      = "date"
	QueryParamStart     = "start"
	QueryParamEnd       = "end"
	QueryParamWeek      = "week"
	QueryParamYear      = "year"
)
