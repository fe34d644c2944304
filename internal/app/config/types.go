package config

type DriverConfig struct {
	Redis  Redis
	Logger Logger
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App         App
	ShiftSource ShiftSource
	Cache       Cache
	JWT         JWT
}

type App struct {
	Env             string
	Port            string
	Version         string
	Timezone        string
	EndpointPrefix  string
	MaxRequests     int
	ShutdownTimeout int

	// PrefetchCronSpec enables the cache-warming worker when non-empty.
	PrefetchCronSpec string
	// PrefetchSubjects is the comma-separated list of subject IDs whose
	// current week the worker keeps warm.
	PrefetchSubjects string
}

type ShiftSource struct {
	// Kind selects the adapter: "teams" or "ics".
	Kind string
	// BaseUrl and Token configure the Teams-style HTTP source.
	BaseUrl string
	Token   string
	// ICSFeedUrl configures the ICS feed source.
	ICSFeedUrl string
	// RequestsPerSecond throttles outbound source queries.
	RequestsPerSecond int
}

type Cache struct {
	// Backend selects the store: "memory" or "redis".
	Backend    string
	TTLMinutes int
}

type JWT struct {
	Secret string
}
