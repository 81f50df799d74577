package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"notification-service/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestContextMiddleware ensures every request carries a request id, both
// in the request context and in the response header.
func RequestContextMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Request = ctx.Request.WithContext(logger.WithRequestID(ctx.Request.Context(), requestID))
		ctx.Writer.Header().Set(requestIDHeader, requestID)
		ctx.Next()
	}
}

// RequestLogMiddleware writes one access-log line per request.
func RequestLogMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		logger.WithContext(ctx.Request.Context()).Infof(
			"HTTP %s %s status=%d latency=%s client=%s",
			ctx.Request.Method,
			ctx.Request.URL.Path,
			ctx.Writer.Status(),
			time.Since(start),
			ctx.ClientIP(),
		)
	}
}
