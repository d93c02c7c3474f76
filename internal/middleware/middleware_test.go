package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrdesk/config"
	"hrdesk/internal/core"
	"hrdesk/internal/database/client"
	"hrdesk/internal/database/fluentd/repository"
	"hrdesk/internal/database/slot"
	"hrdesk/internal/dto"
	"hrdesk/internal/i18n"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/pkg/response"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type envelope struct {
	RequestID   string          `json:"requestID"`
	Code        int             `json:"code"`
	Data        json.RawMessage `json:"data"`
	Message     string          `json:"message"`
	Description string          `json:"description"`
}

func testConfig() *config.Configuration {
	conf := &config.Configuration{}
	conf.App.Name = "hrdesk"
	conf.App.Env = "test"
	conf.App.SecretKey = "test-secret"
	conf.Auth.TokenTTL = 3600
	conf.Admin.EmailDomain = "gtech.com"
	conf.Store.FallbackOnCorrupt = true
	return conf
}

// newEngine 與正式 router 相同的 middleware 順序
func newEngine(conf *config.Configuration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	trace := &telemetry.Trace{}
	metric := telemetry.NewMetric(conf)
	logRepo := repository.NewLogRepository(conf, client.NoopClient{})

	r := gin.New()
	r.Use(NewRequestContext().Handler())
	r.Use(NewTraceEntry(trace, metric, conf).Handler())
	r.Use(NewLogger(logger, trace, logRepo).LoggerHandler())
	r.Use(NewCors(trace, conf).CorsHandler())
	r.Use(NewRecovery(logger, trace, metric, logRepo).ErrorHandler())
	r.Use(NewResponse(logger, trace, metric, logRepo).FormatHandler())
	return r
}

func do(r http.Handler, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestSuccessEnvelope(t *testing.T) {
	r := newEngine(testConfig())
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"pong": true})
	})

	w, env := do(r, http.MethodGet, "/ping", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if env.Code != 0 || env.Message != "OK" || env.Description != "Request Success" {
		t.Fatalf("envelope = %+v", env)
	}
	if env.RequestID == "" || env.RequestID != w.Header().Get(HeaderRequestID) {
		t.Fatalf("requestID %q, header %q", env.RequestID, w.Header().Get(HeaderRequestID))
	}
	if string(env.Data) != `{"pong":true}` {
		t.Fatalf("data = %s", env.Data)
	}
}

func TestCreateKeeps201(t *testing.T) {
	r := newEngine(testConfig())
	r.POST("/things", func(c *gin.Context) {
		response.Create(c, gin.H{"id": 1, "message": "thing created"})
	})

	w, env := do(r, http.MethodPost, "/things", `{"name":"x"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
	if env.Description != "thing created" {
		t.Fatalf("description = %q", env.Description)
	}
}

func TestAppErrorRendered(t *testing.T) {
	r := newEngine(testConfig())
	r.GET("/employees/:id", func(c *gin.Context) {
		response.AbortWithError(c, cErr.NotFound("employee not found"))
	})

	w, env := do(r, http.MethodGet, "/employees/99", "", map[string]string{HeaderRequestID: "req-1"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if env.Code != cErr.NOT_FOUND || env.Description != "employee not found" || env.RequestID != "req-1" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestPanicBecomes500(t *testing.T) {
	r := newEngine(testConfig())
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w, env := do(r, http.MethodGet, "/boom", "", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if env.Code != cErr.INTERNAL_ERROR {
		t.Fatalf("code = %d", env.Code)
	}
}

func TestUnknownRouteEnvelope(t *testing.T) {
	r := newEngine(testConfig())

	w, env := do(r, http.MethodGet, "/nope", "", nil)
	if w.Code != http.StatusNotFound || env.Code != cErr.NOT_FOUND {
		t.Fatalf("status = %d, envelope %+v", w.Code, env)
	}
}

func TestRequestContextCarriesMetaAndLocale(t *testing.T) {
	r := newEngine(testConfig())
	var gotID, gotLocale string
	r.GET("/ctx", func(c *gin.Context) {
		gotID = core.RequestMetaFrom(c.Request.Context()).RequestID
		gotLocale = i18n.LocaleFromContext(c.Request.Context())
		response.Success(c, nil)
	})

	do(r, http.MethodGet, "/ctx", "", map[string]string{
		HeaderRequestID:      "abc",
		HeaderAcceptLanguage: "zh-TW,zh;q=0.9",
	})
	if gotID != "abc" {
		t.Fatalf("request id = %q", gotID)
	}
	if gotLocale != "zh-TW,zh;q=0.9" {
		t.Fatalf("locale = %q", gotLocale)
	}
}

func TestRedactBody(t *testing.T) {
	got := redactBody("application/json", []byte(`{"email":"a@b.c","password":"secret"}`))
	if strings.Contains(got, "secret") {
		t.Fatalf("password leaked: %s", got)
	}
	if got := redactBody("application/json", []byte(`{"name":"Ali"}`)); got != `{"name":"Ali"}` {
		t.Fatalf("preview = %s", got)
	}
}

func newSessionEngine(t *testing.T, enabled bool) (*gin.Engine, *service.AuthService) {
	t.Helper()
	conf := testConfig()
	conf.Auth.Enabled = enabled
	ws, err := service.NewWorkspace(conf, zap.NewNop(), slot.NewMemory())
	if err != nil {
		t.Fatalf("NewWorkspace: %v", err)
	}
	trace := &telemetry.Trace{}
	auth := service.NewAuthService(trace, conf, zap.NewNop(), ws)

	r := newEngine(conf)
	g := r.Group("/", NewSession(zap.NewNop(), trace, conf, auth).Handler())
	g.GET("/whoami", func(c *gin.Context) {
		response.Success(c, gin.H{"actor": core.RequestMetaFrom(c.Request.Context()).Actor})
	})
	return r, auth
}

func TestSessionDisabledPassesThrough(t *testing.T) {
	r, _ := newSessionEngine(t, false)
	w, _ := do(r, http.MethodGet, "/whoami", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestSessionGate(t *testing.T) {
	r, auth := newSessionEngine(t, true)
	ctx := context.Background()

	w, env := do(r, http.MethodGet, "/whoami", "", nil)
	if w.Code != http.StatusUnauthorized || env.Code != cErr.UNAUTHORIZED {
		t.Fatalf("no token: status %d, code %d", w.Code, env.Code)
	}

	w, env = do(r, http.MethodGet, "/whoami", "", map[string]string{"Authorization": "Bearer garbage"})
	if w.Code != http.StatusUnauthorized || env.Code != cErr.INVALID_SESSION {
		t.Fatalf("bad token: status %d, code %d", w.Code, env.Code)
	}

	session, err := auth.Login(ctx, &dto.LoginDto{Email: "hr@gtech.com"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	w, env = do(r, http.MethodGet, "/whoami", "", map[string]string{"Authorization": "Bearer " + session.Token})
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status %d, body %s", w.Code, w.Body.String())
	}
	if string(env.Data) != `{"actor":"hr@gtech.com"}` {
		t.Fatalf("data = %s", env.Data)
	}

	// websocket 用 query string 帶 token
	w, _ = do(r, http.MethodGet, "/whoami?token="+session.Token, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("query token: status %d", w.Code)
	}

	if err := auth.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	w, env = do(r, http.MethodGet, "/whoami", "", map[string]string{"Authorization": "Bearer " + session.Token})
	if w.Code != http.StatusUnauthorized || env.Code != cErr.UNAUTHORIZED {
		t.Fatalf("after logout: status %d, code %d", w.Code, env.Code)
	}
}
