package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"
	"unicode/utf8"

	"hrdesk/internal/core"
	"hrdesk/internal/database/fluentd/model"
	"hrdesk/internal/database/fluentd/repository"
	cErr "hrdesk/internal/pkg/error"
	res "hrdesk/internal/pkg/response"
	"hrdesk/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery 負責所有錯誤回應：panic 與 handler 透過 c.Error 丟出的錯誤
type Recovery struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	fluentdRepository *repository.LogRepository
}

func NewRecovery(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	fluentdRepository *repository.LogRepository,
) *Recovery {
	return &Recovery{
		logger:            logger,
		trace:             trace,
		metric:            metric,
		fluentdRepository: fluentdRepository,
	}
}

func (middleware *Recovery) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestTime := time.Now()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		}
		requestID := requestIDOf(c)

		// panic recover 必須在 c.Next() 之前註冊
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			duration := time.Since(requestTime)
			ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRecoveryMiddleware))
			meta := core.TracePanicMeta{
				Path:       c.Request.URL.Path,
				Method:     c.Request.Method,
				ClientIP:   c.ClientIP(),
				UserAgent:  c.Request.UserAgent(),
				DurationMs: float64(duration.Milliseconds()),
				Message:    toSafeString(fmt.Sprint(rec)),
				Stack:      toSafeStack(debug.Stack()),
				Status:     http.StatusInternalServerError,
			}
			middleware.trace.ApplyTraceAttributes(span, meta)

			middleware.logger.Error("[PANIC] Recovered",
				zap.String("path", meta.Path),
				zap.String("method", meta.Method),
				zap.String("client_ip", meta.ClientIP),
				zap.Duration("duration", duration),
				zap.String("panic", meta.Message),
				zap.String("stacktrace", meta.Stack),
				zap.String("requestId", requestID),
			)

			err := cErr.InternalServer("unexpected panic")
			end(err)
			middleware.metric.IncError(err.ErrorCode())
			middleware.logResponse(ctx, requestID, err.ErrorCode(), http.StatusInternalServerError, meta.Message, duration)
			if !c.Writer.Written() {
				res.FailByErr(c, requestID, err)
			}
			c.Abort()
		}()

		c.Next()

		// 統一處理非 panic 的 gin errors
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		duration := time.Since(requestTime)
		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRecoveryMiddleware))

		// 取第一個 *cErr.Error
		for _, e := range c.Errors {
			var appErr *cErr.Error
			if !errors.As(e.Err, &appErr) {
				continue
			}
			middleware.trace.ApplyTraceAttributes(span, core.TraceErrorMeta{
				Code:       appErr.ErrorCode(),
				Message:    appErr.Error(),
				Detail:     appErr.ErrorDesc(),
				DurationMs: float64(duration.Milliseconds()),
				Status:     appErr.HttpCode(),
			})
			end(appErr)

			fields := []zap.Field{
				zap.Int("code", appErr.ErrorCode()),
				zap.Int("status", appErr.HttpCode()),
				zap.String("data", appErr.ErrorDesc()),
				zap.Duration("duration", duration),
				zap.String("requestId", requestID),
			}
			if appErr.HttpCode() >= http.StatusInternalServerError {
				middleware.logger.Error(appErr.Error(), fields...)
			} else {
				middleware.logger.Warn(appErr.Error(), fields...)
			}
			middleware.metric.IncError(appErr.ErrorCode())
			middleware.logResponse(ctx, requestID, appErr.ErrorCode(), appErr.HttpCode(), appErr.ErrorDesc(), duration)
			res.FailByErr(c, requestID, appErr)
			c.Abort()
			return
		}

		// 其餘未知錯誤
		unknown := c.Errors.String()
		middleware.trace.ApplyTraceAttributes(span, core.TraceErrorMeta{
			Code:       cErr.INTERNAL_ERROR,
			Message:    "unknown-error",
			Detail:     toSafeString(unknown),
			DurationMs: float64(duration.Milliseconds()),
			Status:     http.StatusInternalServerError,
		})
		end(c.Errors.Last().Err)
		middleware.logger.Error("[ERROR] unknown",
			zap.String("error", unknown),
			zap.Duration("duration", duration),
			zap.String("requestId", requestID),
		)
		middleware.metric.IncError(cErr.INTERNAL_ERROR)
		middleware.logResponse(ctx, requestID, cErr.INTERNAL_ERROR, http.StatusInternalServerError, toSafeString(unknown), duration)
		res.Fail(c, requestID, http.StatusInternalServerError, cErr.INTERNAL_ERROR, "unknown-error", unknown)
		c.Abort()
	}
}

func (middleware *Recovery) logResponse(ctx context.Context, requestID string, code, status int, detail string, duration time.Duration) {
	err := middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
		RequestID:  requestID,
		Code:       code,
		StatusCode: status,
		Error:      detail,
		LatencyMs:  float64(duration.Microseconds()) / 1000,
		ResponseTS: time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
	})
	if err != nil {
		middleware.logger.Warn("fluentd response log failed", zap.Error(err))
	}
}

func toSafeString(s string) string {
	const max = 8000
	if utf8.ValidString(s) {
		if len(s) > max {
			return s[:max] + "…"
		}
		return s
	}
	b := []byte(s)
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}

func toSafeStack(b []byte) string {
	const max = 16000
	if utf8.Valid(b) {
		if len(b) > max {
			return string(b[:max]) + "…"
		}
		return string(b)
	}
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}
