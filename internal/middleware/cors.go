package middleware

import (
	"hrdesk/config"
	"hrdesk/internal/core"
	"hrdesk/internal/telemetry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Cors struct {
	trace   *telemetry.Trace
	origins []string
}

func NewCors(trace *telemetry.Trace, config *config.Configuration) *Cors {
	return &Cors{trace: trace, origins: config.App.CorsOrigins}
}

// CorsHandler 設定 CORS；不追蹤的路徑仍要套用 CORS，避免 preflight 失敗
func (m *Cors) CorsHandler() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization", HeaderAcceptLanguage, HeaderRequestID},
		ExposeHeaders:    []string{HeaderRequestID, "Content-Disposition"},
		AllowCredentials: true,
	}
	if len(m.origins) > 0 {
		cfg.AllowOrigins = m.origins
	} else {
		// 未設定時接受任何來源（帶 credentials 不能用 "*"）
		cfg.AllowOriginFunc = func(string) bool { return true }
	}
	corsHandler := cors.New(cfg)

	type corsMeta struct {
		AllowOrigins []string `trace:"http.cors.allow_origins"`
		AllowMethods []string `trace:"http.cors.allow_methods"`
		AllowHeaders []string `trace:"http.cors.allow_headers"`
		AllowCreds   bool     `trace:"http.cors.allow_credentials"`
	}

	return func(c *gin.Context) {
		if skipTelemetry(c.FullPath()) {
			corsHandler(c)
			return
		}

		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanCorsMiddleware))
		defer end(nil)

		m.trace.ApplyTraceAttributes(span, corsMeta{
			AllowOrigins: m.origins,
			AllowMethods: cfg.AllowMethods,
			AllowHeaders: cfg.AllowHeaders,
			AllowCreds:   cfg.AllowCredentials,
		})

		corsHandler(c)
	}
}
