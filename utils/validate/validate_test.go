package validate

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cErr "hrdesk/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

type sampleDto struct {
	Name string `json:"name" binding:"required"`
	Qty  int    `json:"qty" binding:"min=0"`
}

func newContext(method, target, body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindAndValidateReportsJSONFieldName(t *testing.T) {
	c := newContext(http.MethodPost, "/", `{"qty": -1}`)
	var req sampleDto
	cause, respErr := BindAndValidate(c, &req)
	if cause == nil {
		t.Fatal("expected binding error")
	}
	appErr, ok := respErr.(*cErr.Error)
	if !ok || appErr.ErrorCode() != cErr.BAD_REQUEST_BODY {
		t.Fatalf("expected BAD_REQUEST_BODY, got %v", respErr)
	}
	if !strings.Contains(appErr.ErrorDesc(), `"name"`) || !strings.Contains(appErr.ErrorDesc(), `"qty"`) {
		t.Fatalf("description should name json fields, got %q", appErr.ErrorDesc())
	}
}

func TestParseIntParam(t *testing.T) {
	c := newContext(http.MethodGet, "/employees/abc", "")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	if _, cause, respErr := ParseIntParam(c, "id"); cause == nil || respErr == nil {
		t.Fatal("expected error for non numeric id")
	}

	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, cause, _ := ParseIntParam(c, "id")
	if cause != nil || id != 42 {
		t.Fatalf("expected 42, got %d %v", id, cause)
	}
}

func TestRequireNonBlank(t *testing.T) {
	if err := RequireNonBlank(Field{Name: "text", Value: "   "}); err == nil {
		t.Fatal("expected blank error")
	}
	if err := RequireNonBlank(Field{Name: "text", Value: "ok"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestRequireNonBlankReportsFirstBlankField(t *testing.T) {
	for i := 0; i < 20; i++ {
		err := RequireNonBlank(Field{"name", "Noor"}, Field{"subject", " "}, Field{"description", ""}, Field{"date", "\t"})
		var appErr *cErr.Error
		if !errors.As(err, &appErr) {
			t.Fatalf("expected app error, got %v", err)
		}
		if appErr.ErrorDesc() != "subject must not be blank" {
			t.Fatalf("run %d reported %q", i, appErr.ErrorDesc())
		}
	}
}
