package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records HTTP traffic
type RequestObserver interface {
	RequestStarted() func()
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// Metrics records in-flight requests, counts and latencies per route template.
// Unmatched paths share one label so scanners can't blow up the series count.
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		done := observer.RequestStarted()
		defer done()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
