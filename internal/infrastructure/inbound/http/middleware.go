package delivery_http

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	ports "post-sync-client/internal/domain/ports/output"
)

// RequestLogger logs and measures every request by its route template.
func RequestLogger(log ports.Logger, metrics ports.MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()

		metrics.IncrementHTTPRequests(c.Request.Method, path, strconv.Itoa(status))
		metrics.RecordHTTPRequestDuration(c.Request.Method, path, duration)

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("duration", duration),
		}
		if status >= 500 {
			log.Error("HTTP request", attrs...)
			return
		}
		log.Debug("HTTP request", attrs...)
	}
}
