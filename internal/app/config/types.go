package config

type (
	DriverConfig struct {
		PostgresDB PostgresDB
		Redis      Redis
		Logger     Logger
		RabbitMQ   RabbitMQ
		Minio      Minio
	}
	PostgresDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DBName   string
		SSLMode  string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type (
	InternalConfig struct {
		App       App
		Timesheet Timesheet
	}
	App struct {
		Env                     string
		Port                    string
		Version                 string
		Address                 string
		Timezone                string
		EndpointPrefix          string
		Plan                    string
		APIKey                  string
		MaxRequests             int
		ShutdownTimeout         int
		RequestTimeoutInSeconds int
		WriteRateLimitPerMinute int
		WriteRateLimitBlockTime int
	}
	Timesheet struct {
		CacheTTLInSeconds    int
		CopyWeekAtomic       bool
		EventQueue           string
		ExportBucket         string
		ExportQuotaPerMinute int
	}
)
