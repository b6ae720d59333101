package middleware

// contextKey is the type of keys stored by this package in Gin and request
// contexts. Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	requestIDKey = contextKey("requestID")
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"
