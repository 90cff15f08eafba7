package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH             ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "arena-scheduler"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	ResourceArena          = "arena"
	ResourceCategory       = "category"
	ResourceTimesheetEntry = "timesheet entry"
)

// Plan tiers understood by the capability checker.
const (
	PlanFree     = "free"
	PlanPaid     = "paid"
	PlanReadOnly = "readonly"

	FreePlanArenaLimit    = 1
	FreePlanCategoryLimit = 2
)

const (
	StatusInactive = 0
	StatusActive   = 1
)

const (
	DateLayout    = "2006-01-02"
	DateRawLayout = "20060102"
)
