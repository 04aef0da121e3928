package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sponsorcrm/internal/logger"
)

// RequestID propagates an incoming X-Request-ID or mints one, and stores a
// request-scoped logger in the gin context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Set("logger", logger.L().With(zap.String("request_id", requestID)))
		c.Next()
	}
}

// RequestLogger logs one line per request after it finishes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		l := logger.L()
		if v, ok := c.Get("logger"); ok {
			if ctxLogger, ok := v.(*zap.Logger); ok {
				l = ctxLogger
			}
		}
		l.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}
