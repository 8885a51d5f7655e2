package server

import (
	"net/http"
	"time"

	"servicehive/internal/marketerrors"
	"servicehive/services/market/helpers"
	"servicehive/utils"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the user identity verified by the authentication
// collaborator in front of this service.
const UserIDHeader = "X-User-ID"

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthRequired rejects requests without a verified user identity before any
// service logic runs.
func AuthRequired(c *gin.Context) {
	userID := c.GetHeader(UserIDHeader)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrUnauthenticated, "authentication required")
		c.Abort()
		return
	}

	c.Set(helpers.ContextUserKey, userID)
	c.Next()
}
