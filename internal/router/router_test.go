package router

import (
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
	"hrdesk/internal/handler"
	"hrdesk/internal/i18n"
	"hrdesk/internal/middleware"
	"hrdesk/internal/service"
	"hrdesk/internal/telemetry"
	"hrdesk/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type envelope struct {
	Code        int             `json:"code"`
	Data        json.RawMessage `json:"data"`
	Message     string          `json:"message"`
	Description string          `json:"description"`
}

// newServer 手動組出與 wireApp 相同的依賴圖，slot 用記憶體
func newServer(t *testing.T) (*gin.Engine, slot.Backend) {
	t.Helper()
	conf := &config.Configuration{}
	conf.App.Name = "hrdesk"
	conf.App.Env = "test"
	conf.App.Version = "test"
	conf.App.SecretKey = "router-test"
	conf.App.Locale = "en"
	conf.Auth.Enabled = true
	conf.Auth.TokenTTL = 3600
	conf.Admin.EmailDomain = "gtech.com"
	conf.Store.FallbackOnCorrupt = true

	logger := zap.NewNop()
	trace := &telemetry.Trace{}
	metric := telemetry.NewMetric(conf)
	backend := slot.NewMemory()
	logRepo := repository.NewLogRepository(conf, client.NoopClient{})
	hub := websocket.NewHub(logger)

	ws, err := service.ProvideWorkspace(conf, logger, backend, service.NewStoreAudit(logger, metric, logRepo, hub))
	if err != nil {
		t.Fatal(err)
	}
	if err := ws.Registry.LoadAll(t.Context()); err != nil {
		t.Fatal(err)
	}
	translator, err := i18n.NewTranslator(conf, logger)
	if err != nil {
		t.Fatal(err)
	}

	authService := service.NewAuthService(trace, conf, logger, ws)
	exportService := service.NewExportService(trace, logger, ws)

	r := NewRouter(conf,
		middleware.NewRequestContext(),
		middleware.NewTraceEntry(trace, metric, conf),
		middleware.NewRecovery(logger, trace, metric, logRepo),
		middleware.NewCors(trace, conf),
		middleware.NewLogger(logger, trace, logRepo),
		middleware.NewResponse(logger, trace, metric, logRepo),
		middleware.NewSession(logger, trace, conf, authService),
		handler.NewWebSocketHandler(hub),
		NewHealthRouter(handler.NewHealthHandler(conf, service.NewHealthService())),
		NewAuthRouter(handler.NewAuthHandler(trace, authService)),
		NewPeopleRouter(
			handler.NewEmployeeHandler(trace, service.NewEmployeeService(trace, conf, logger, ws)),
			handler.NewAttendanceHandler(trace, service.NewAttendanceService(trace, conf, logger, ws), exportService),
			handler.NewDepartmentHandler(trace, service.NewDepartmentService(trace, ws)),
			handler.NewComplaintHandler(trace, service.NewComplaintService(trace, conf, logger, translator, ws)),
			handler.NewApplicationHandler(trace, service.NewApplicationService(trace, conf, logger, translator, ws)),
		),
		NewWorkplaceRouter(
			handler.NewFacilityHandler(trace, service.NewFacilityService(trace, logger, ws)),
			handler.NewCalendarHandler(trace, service.NewCalendarService(trace, ws)),
			handler.NewEventHandler(trace, service.NewEventService(trace, ws)),
		),
		NewAdminRouter(
			handler.NewAdminHandler(trace, service.NewAdminService(trace, conf, logger, ws)),
			handler.NewSettingsHandler(trace, service.NewSettingsService(trace, ws)),
			handler.NewDashboardHandler(trace, service.NewDashboardService(trace, conf, ws)),
			handler.NewExportHandler(trace, exportService),
		),
	)
	return r, backend
}

func call(r http.Handler, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	w, env := call(r, http.MethodPost, "/auth/login", "", `{"email":"hr@gtech.com","password":"x"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}
	var session struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &session); err != nil || session.Token == "" {
		t.Fatalf("login data = %s", env.Data)
	}
	return session.Token
}

func TestHealthRoutesArePublic(t *testing.T) {
	r, _ := newServer(t)
	for _, path := range []string{"/health-check", "/health/liveness"} {
		if w, _ := call(r, http.MethodGet, path, "", ""); w.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, w.Code)
		}
	}
}

func TestProtectedRoutesNeedSession(t *testing.T) {
	r, _ := newServer(t)
	w, env := call(r, http.MethodGet, "/employees", "", "")
	if w.Code != http.StatusUnauthorized || env.Code != 40100 {
		t.Fatalf("status = %d, code = %d", w.Code, env.Code)
	}
}

func TestEmployeeLifecyclePersistsToSlot(t *testing.T) {
	r, backend := newServer(t)
	token := login(t, r)

	w, env := call(r, http.MethodPost, "/employees", token,
		`{"name":"Noor Fatima","designation":"QA Engineer","department":"Engineering","documents":{"cnicPdf":"cnic.pdf"}}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var created struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatal(err)
	}
	if created.ID != 7 || created.Status != "active" {
		t.Fatalf("created = %+v", created)
	}

	raw, err := backend.Get(t.Context(), core.SlotEmployees)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), `[{"id":7,`) {
		t.Fatalf("employees slot should start with new record: %.80s", raw)
	}

	if w, _ := call(r, http.MethodGet, "/employees/7/documents", token, ""); w.Code != http.StatusOK {
		t.Fatalf("documents status = %d", w.Code)
	}
	if w, _ := call(r, http.MethodDelete, "/employees/7", token, ""); w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w, env = call(r, http.MethodGet, "/employees/7", token, "")
	if w.Code != http.StatusNotFound || env.Code != 40400 {
		t.Fatalf("after delete status = %d, code = %d", w.Code, env.Code)
	}
}

func TestValidationError(t *testing.T) {
	r, _ := newServer(t)
	token := login(t, r)

	w, _ := call(r, http.MethodPost, "/employees", token, `{"designation":"QA"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newServer(t)
	w, env := call(r, http.MethodGet, "/no-such-page", "", "")
	if w.Code != http.StatusNotFound || env.Code != 40400 {
		t.Fatalf("status = %d, code = %d", w.Code, env.Code)
	}
}

func TestExportSnapshot(t *testing.T) {
	r, _ := newServer(t)
	token := login(t, r)

	w, _ := call(r, http.MethodGet, "/export?format=json", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %.200s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "hrdesk-snapshot.json") {
		t.Fatalf("Content-Disposition = %q", cd)
	}

	if w, _ := call(r, http.MethodGet, "/export?format=csv", token, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad format status = %d", w.Code)
	}
}

func TestExportNeverCarriesPasswordHash(t *testing.T) {
	r, _ := newServer(t)
	token := login(t, r)

	w, _ := call(r, http.MethodPost, "/admin/users", token,
		`{"name":"Sana Iqbal","userId":"sana","role":"Editor","password":"secret99","confirmPassword":"secret99"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create user status = %d, body %s", w.Code, w.Body.String())
	}

	for _, format := range []string{"json", "yaml"} {
		w, _ := call(r, http.MethodGet, "/export?format="+format, token, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s status = %d", format, w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "sana@gtech.com") {
			t.Fatalf("%s export is missing the new user", format)
		}
		if strings.Contains(strings.ToLower(body), "passwordhash") || strings.Contains(body, "$2a$") {
			t.Fatalf("%s export leaks a password hash", format)
		}
	}

	w, _ = call(r, http.MethodGet, "/export?format=xlsx", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("xlsx status = %d", w.Code)
	}
	f, err := excelize.OpenReader(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	for _, sheet := range f.GetSheetList() {
		rows, _ := f.GetRows(sheet)
		for _, row := range rows {
			for _, cell := range row {
				if strings.Contains(strings.ToLower(cell), "passwordhash") || strings.Contains(cell, "$2a$") {
					t.Fatalf("xlsx sheet %s leaks a password hash", sheet)
				}
			}
		}
	}
}
