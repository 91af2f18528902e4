package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"NFTMarketLedger/src/xzap"
)

type BodyLogWrite struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *BodyLogWrite) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *BodyLogWrite) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// RLog 请求响应日志打印处理
func RLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		//1、获取原始请求路径和参数
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		//2、获取并保存请求体
		var buf bytes.Buffer
		reader := io.TeeReader(c.Request.Body, &buf)
		requestBody, _ := io.ReadAll(reader)
		c.Request.Body = io.NopCloser(&buf)
		bodyLogWriter := &BodyLogWrite{ResponseWriter: c.Writer, body: bytes.NewBufferString("")}
		c.Writer = bodyLogWriter

		//3、开始时间
		start := time.Now()

		//4、调用下一个处理器
		c.Next()

		//5、记录请求与响应
		responseBody := bodyLogWriter.body.Bytes()
		logger := xzap.WithContext(c.Request.Context())

		if len(c.Errors) > 0 {
			for _, e := range c.Errors.Errors() {
				logger.Error(e)
			}
		} else {
			latency := float64(time.Since(start).Nanoseconds() / 1000000.0)
			fields := []zapcore.Field{
				zap.Int("status", c.Writer.Status()),
				zap.String("method", c.Request.Method),
				zap.String("function", c.HandlerName()),
				zap.String("path", path),
				zap.String("query", query),
				zap.String("ip", c.ClientIP()),
				zap.String("user-agent", c.Request.UserAgent()),
				zap.String("content-type", c.Request.Header.Get("Content-Type")),
				zap.Float64("latency", latency),
				zap.String("request", string(requestBody)),
				zap.String("response", string(responseBody)),
			}
			logger.Info("MarketLedger-End", fields...)
		}
	}
}
