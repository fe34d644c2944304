package constvars

// Client-facing messages.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientShiftSourceUnavailable        = "The shift data source is currently unavailable, please try again later"
	ErrClientSubjectNotFound               = "The requested user could not be found"
)

// Developer-facing messages.
const (
	ErrDevValidationFailed          = "validation failed for request payload"
	ErrDevCannotParseDate           = "failed to parse date value"
	ErrDevInvalidTimezone           = "failed to resolve timezone identifier"
	ErrDevCannotMarshalJSON         = "failed to marshal data into JSON"
	ErrDevCannotParseJSON           = "failed to parse JSON data"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevQueryShiftSource          = "shift source query failed"
	ErrDevDecodeShiftSource         = "failed to decode shift source response"
	ErrDevParseICSFeed              = "failed to parse ICS feed"
	ErrDevResolveSubject            = "failed to resolve subject identifier: %s"
	ErrDevSubjectNotFound           = "no directory entry found for subject identifier: %s"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisSetData              = "failed to set data to redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
	ErrDevRedisUnlock               = "failed to release redis lock"
	ErrDevServerProcess             = "internal process failed"
	ErrDevAuthTokenInvalidOrExpired = "auth token is invalid or expired"
)
