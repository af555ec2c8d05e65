package middleware

import (
	"Ronghua/internal/pkg/logger"
	"Ronghua/internal/pkg/mongo"
	"Ronghua/internal/service"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// OpLogMiddleware 记录管理员的写操作，读请求不记录
func OpLogMiddleware(opLogs service.OpLogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !opLogs.Enabled() || c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		entry := &mongo.OpLog{
			TraceID:   logger.TraceID(c.Request.Context()),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			LatencyMs: time.Since(start).Milliseconds(),
			ClientIP:  c.ClientIP(),
			CreatedAt: start,
		}
		if sess := CurrentAdmin(c); sess != nil {
			entry.Admin = sess.Username
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), 3*time.Second)
		defer cancel()
		opLogs.Record(ctx, entry)
	}
}
