package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/logger"
	"github.com/tasfirul8269/frooxi-backend/internal/telemetry"
	"go.uber.org/zap"
)

// RequestLogger logs one structured line per completed request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", GetRequestID(c)),
		}
		if traceID := telemetry.GetTraceID(c.Request.Context()); traceID != "" {
			fields = append(fields, zap.String("trace_id", traceID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		log := logger.Get()
		switch {
		case c.Writer.Status() >= 500:
			log.Error("request completed", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("request completed", fields...)
		default:
			log.Info("request completed", fields...)
		}
	}
}
