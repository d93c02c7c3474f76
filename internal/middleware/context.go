package middleware

import (
	"strings"

	"hrdesk/internal/core"
	"hrdesk/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID      = "X-Request-ID"
	HeaderAcceptLanguage = "Accept-Language"
)

// RequestContext 必須放在最前面：request id 與語系要先進 c.Request 的 context，
// 後面的 trace / handler 才拿得到
type RequestContext struct{}

func NewRequestContext() *RequestContext {
	return &RequestContext{}
}

func (m *RequestContext) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if requestID == "" {
			id, err := uuid.NewV7()
			if err != nil {
				id = uuid.New()
			}
			requestID = id.String()
		}

		ctx := core.WithRequestMeta(c.Request.Context(), core.RequestMeta{RequestID: requestID})
		ctx = i18n.WithLocale(ctx, c.GetHeader(HeaderAcceptLanguage))
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// requestIDOf 沒經過 RequestContext 時回傳空字串
func requestIDOf(c *gin.Context) string {
	return core.RequestMetaFrom(c.Request.Context()).RequestID
}
