package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hrdesk/internal/core"
	"hrdesk/internal/database/fluentd/model"
	"hrdesk/internal/database/fluentd/repository"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 把 handler 透過 c.Set("data") 留下的資料包成統一格式
type Response struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	fluentdRepository *repository.LogRepository
}

func NewResponse(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	fluentdRepository *repository.LogRepository,
) *Response {
	return &Response{
		logger:            logger,
		trace:             trace,
		metric:            metric,
		fluentdRepository: fluentdRepository,
	}
}

func (middleware *Response) FormatHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipTelemetry(c.FullPath()) {
			c.Next()
			return
		}

		requestTime := time.Now()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		} else {
			c.Set("requestDuration", requestTime)
		}

		c.Next()

		// 錯誤交給 Recovery；已寫出（檔案下載、websocket）就不動
		if len(c.Errors) > 0 || c.Writer.Written() {
			return
		}

		statusCode := c.Writer.Status()
		if statusCode >= http.StatusBadRequest {
			response.AbortWithError(c, cErr.MapHttpStatusToError(statusCode, "request error"))
			return
		}

		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanResponseMiddleware))
		defer end(nil)

		data, _ := c.Get("data")
		if data == nil {
			data = map[string]any{}
		}
		message := "Request Success"
		if s := c.GetString("message"); s != "" {
			message = s
		}
		duration := time.Since(requestTime)
		requestID := requestIDOf(c)

		middleware.trace.ApplyTraceAttributes(span, core.TraceResponseMeta{
			Path:       c.Request.URL.Path,
			Method:     c.Request.Method,
			Status:     statusCode,
			Message:    message,
			Code:       0,
			DurationMs: float64(duration.Milliseconds()),
			Data:       safePreviewJSON(data, 2000),
		})

		traceID := span.SpanContext().TraceID()
		middleware.logger.Info("[Response] "+message,
			zap.String("requestId", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", statusCode),
			zap.Duration("duration", duration),
			zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
		)

		body, err := json.Marshal(response.Response{
			RequestID:   requestID,
			Code:        0,
			Data:        data,
			Message:     "OK",
			Description: message,
		})
		if err != nil {
			response.AbortWithError(c, cErr.InternalServer("marshal response failed"))
			return
		}

		if lerr := middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
			RequestID:  requestID,
			Code:       0,
			StatusCode: statusCode,
			Body:       safePreviewJSON(data, 2000),
			LatencyMs:  float64(duration.Microseconds()) / 1000,
			ResponseTS: time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
		}); lerr != nil {
			middleware.logger.Warn("fluentd response log failed", zap.Error(lerr))
		}
		middleware.metric.IncResponse(statusCode)

		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Writer.WriteHeader(statusCode) // handler 可能設了 201
		if _, werr := c.Writer.Write(body); werr != nil {
			middleware.logger.Warn("write response failed", zap.Error(werr), zap.String("requestId", requestID))
		}
	}
}

// safePreviewJSON 序列化為 JSON 字串並限制長度
func safePreviewJSON(data any, max int) string {
	var out string
	switch v := data.(type) {
	case string:
		out = v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("[marshal error: %v]", err)
		}
		out = string(b)
	}
	if len(out) > max {
		return out[:max] + "…"
	}
	return out
}
