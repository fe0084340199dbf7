package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/restaurants/restaurants-api/backend/go-services/pkg/logger"
)

// KeyRequestID is shared with the access log so both read the same key.
const KeyRequestID = logger.RequestIDKey

// RequestID propagates the caller's X-Request-ID or assigns a new one, and
// stores it in the gin context under the same key.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(KeyRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}
