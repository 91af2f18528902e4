package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"NFTMarketLedger/src/xzap"
)

const TraceIDHeader = "X-Trace-Id"

// TraceID 每个请求挂一个trace id,调用方带了就沿用
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		ctx := context.WithValue(c.Request.Context(), xzap.CtxTraceID, traceID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceIDHeader, traceID)
		c.Next()
	}
}
