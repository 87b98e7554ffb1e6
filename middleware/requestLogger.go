package middleware

import (
	"time"

	"zodiac/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// HeaderRequestID carries the request ID in and out.
	HeaderRequestID = "X-Request-Id"
	// RequestIDKey and LoggerKey are the gin context keys set by RequestLogger.
	RequestIDKey = "requestID"
	LoggerKey    = "logger"
)

// RequestLogger tags each request with an ID, stores a logger carrying it in
// both the gin context and the request context, and writes one access-log line when the request finishes.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(HeaderRequestID, id)
		c.Set(RequestIDKey, id)

		reqLogger := logger.With(zap.String("request_id", id))
		c.Set(LoggerKey, reqLogger)
		c.Request = c.Request.WithContext(utils.ContextWithLogger(c.Request.Context(), reqLogger))

		c.Next()

		reqLogger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", getClientIP(c)),
		)
	}
}
