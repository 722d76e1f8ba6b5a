package middleware

import (
	"fmt"
	"time"

	"faster-web/internal/platform/logger"

	"github.com/gin-gonic/gin"
)

// AccessLogMiddleware 以 Cloud Logging 格式記錄每個請求
func AccessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		severity := logger.SeverityInfo
		switch {
		case status >= 500:
			severity = logger.SeverityError
		case status >= 400:
			severity = logger.SeverityWarning
		}

		logger.Log(c.Request.Context(), severity, fmt.Sprintf("%s %s", c.Request.Method, c.FullPath()),
			logger.WithRequestID(GetRequestID(c)),
			logger.WithRoute(c.FullPath()),
			logger.WithHTTPRequest(&logger.HTTPRequest{
				RequestMethod: c.Request.Method,
				RequestURL:    c.Request.URL.String(),
				RequestSize:   c.Request.ContentLength,
				Status:        status,
				UserAgent:     c.Request.UserAgent(),
				RemoteIP:      c.ClientIP(),
				Latency:       fmt.Sprintf("%.3fs", time.Since(start).Seconds()),
			}))
	}
}
