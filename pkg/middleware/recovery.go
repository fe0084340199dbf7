package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restaurants/restaurants-api/backend/go-services/pkg/logger"
	"github.com/restaurants/restaurants-api/backend/go-services/pkg/response"
)

// Recovery turns panics into a 500 envelope. The panic value is only echoed
// when showErrors is set.
func Recovery(showErrors bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, rec any) {
		logger.Errorf("panic serving %s %s: %v (request_id=%s)", c.Request.Method, c.Request.URL.Path, rec, c.GetString(KeyRequestID))
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Fail("Internal server error", fmt.Sprint(rec), showErrors))
	})
}
