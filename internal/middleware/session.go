package middleware

import (
	"strings"

	"hrdesk/config"
	"hrdesk/internal/core"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Session 登入閘門：bearer token 有效且 is-authenticated 仍為 true 才放行
type Session struct {
	logger      *zap.Logger
	trace       *telemetry.Trace
	config      *config.Configuration
	authService *service.AuthService
}

func NewSession(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	authService *service.AuthService,
) *Session {
	return &Session{
		logger:      logger,
		trace:       trace,
		config:      config,
		authService: authService,
	}
}

func (m *Session) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.config.Auth.Enabled {
			c.Next()
			return
		}
		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanSessionMiddleware))

		token, from := readSessionToken(c)
		if token == "" {
			m.trace.ApplyTraceAttributes(span, core.TraceSessionMiddlewareMeta{Status: "missing_token"})
			cause := cErr.Unauthorized("missing session token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		claims, err := m.authService.Authorize(ctx, token)
		if err != nil {
			m.trace.ApplyTraceAttributes(span, core.TraceSessionMiddlewareMeta{Status: "rejected_" + from})
			response.AbortWithError(c, err)
			end(err)
			return
		}
		m.trace.ApplyTraceAttributes(span, core.TraceSessionMiddlewareMeta{Email: claims.Email, Status: "success"})
		end(nil)

		// actor 帶進 context，store audit 會用到
		meta := core.RequestMetaFrom(c.Request.Context())
		meta.Actor = claims.Email
		c.Request = c.Request.WithContext(core.WithRequestMeta(c.Request.Context(), meta))
		c.Set(core.ContextTraceKey, core.WithRequestMeta(m.trace.GetTraceContext(c), meta))
		c.Set(core.ContextUserEmailKey, claims.Email)
		c.Next()
	}
}

// readSessionToken websocket 無法帶 header，允許 ?token=
func readSessionToken(c *gin.Context) (token string, from string) {
	if auth := strings.TrimSpace(c.GetHeader("Authorization")); auth != "" {
		if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return strings.TrimSpace(auth[len("Bearer "):]), "bearer"
		}
	}
	if q := strings.TrimSpace(c.Query("token")); q != "" {
		return q, "query"
	}
	return "", ""
}
