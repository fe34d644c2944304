package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SUBJECT_ID_KEY           ContextKey = "subject_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	// ShiftCacheKeyPrefix is part of the public cache contract: external
	// refresh actions invalidate keys of the form
	// "shifts:<ISO-8601 date>:<subjectID>".
	ShiftCacheKeyPrefix = "shifts:"

	// DaysPerWeek is the size of every week roster.
	DaysPerWeek = 7

	// ShiftCacheTTLMinutes is the default time-to-live of a cached
	// padded-window fetch.
	ShiftCacheTTLMinutes = 5

	// ShiftQueryPageSize caps a single upstream query. Truncation beyond
	// this is the source's concern, not retried here.
	ShiftQueryPageSize = 500
)

const (
	ShiftSourceKindTeams = "teams"
	ShiftSourceKindICS   = "ics"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

const (
	ISODateLayout = "2006-01-02"
)
