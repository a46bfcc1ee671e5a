package middleware

import (
	"minimalapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDMiddleware tags every request with an id, reusing the caller's
// X-Request-ID when present, and attaches a logger carrying it.
func RequestIDMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(utils.RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(utils.RequestIDKey, id)
		c.Set(utils.LoggerKey, logger.With(zap.String("request_id", id)))
		c.Header(utils.RequestIDHeader, id)
		c.Next()
	}
}
