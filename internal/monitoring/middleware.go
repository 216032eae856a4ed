package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware for HTTP metrics collection
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		metrics.RecordHTTPRequest(method, path, status, time.Since(start))
	}
}

// Timer measures a tool invocation duration
type Timer struct {
	start   time.Time
	metrics *Metrics
	tool    string
}

// NewTimer starts a timer for a tool invocation
func NewTimer(metrics *Metrics, tool string) *Timer {
	return &Timer{start: time.Now(), metrics: metrics, tool: tool}
}

// Stop stops the timer and records the invocation
func (t *Timer) Stop(status string) {
	t.metrics.RecordToolCall(t.tool, status, time.Since(t.start))
}
