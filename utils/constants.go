package utils

const (
	// LoggerKey is the gin context key holding the request-scoped logger.
	LoggerKey = "logger"

	// RequestIDKey is the gin context key holding the request id.
	RequestIDKey = "requestID"

	// RequestIDHeader carries the request id in and out of the service.
	RequestIDHeader = "X-Request-ID"
)
