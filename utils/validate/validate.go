package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/pkg/request"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorResponse 輸出格式化的 validator error（欄位 json 名/型別/規則列表）
func ValidationErrorResponse(obj any, err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Sprintf("Validation error: %s", err.Error())
	}
	var b strings.Builder
	b.WriteString("Validation error:\n")
	for _, fe := range errs {
		field, ftype, rules := describeField(obj, fe.StructField())
		fmt.Fprintf(&b, " - Field \"%s\" (type: %s) failed the '%s' validation (rules: %v)\n",
			field, ftype, fe.Tag(), rules)
	}
	return b.String()
}

// describeField 取 json 名稱、型別與 binding 規則
func describeField(obj any, structField string) (name string, typeName string, rules []string) {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return structField, "", nil
	}
	f, ok := t.FieldByName(structField)
	if !ok {
		return structField, "", nil
	}
	name = structField
	if tag := f.Tag.Get("json"); tag != "" && tag != "-" {
		name = strings.Split(tag, ",")[0]
	}
	if tag := f.Tag.Get("binding"); tag != "" {
		rules = strings.Split(tag, ",")
	}
	return name, f.Type.String(), rules
}

// BindAndValidate 綁定 JSON body；DTO 有自訂訊息時優先使用
func BindAndValidate(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindJSON(req); err != nil {
		return err, bindingError(req, err)
	}
	return nil, nil
}

// BindQuery 綁定 query string
func BindQuery(c *gin.Context, req any) (cause error, responseErr error) {
	if err := c.ShouldBindQuery(req); err != nil {
		return err, cErr.BadRequestParams(ValidationErrorResponse(req, err))
	}
	return nil, nil
}

func bindingError(req any, err error) error {
	if _, ok := req.(request.Validator); ok {
		return request.GetError(req, err)
	}
	return cErr.ValidateErr(ValidationErrorResponse(req, err))
}

// ParseIntParam 解析數字型 path 參數
func ParseIntParam(c *gin.Context, key string) (id int, cause error, responseErr error) {
	id, err := strconv.Atoi(c.Param(key))
	if err != nil {
		return 0, err, cErr.ValidatePathParamsErr("invalid " + key)
	}
	return id, nil, nil
}

// ParseStringParam 非空白的 path 參數
func ParseStringParam(c *gin.Context, key string) (value string, cause error, responseErr error) {
	value = strings.TrimSpace(c.Param(key))
	if value == "" {
		err := fmt.Errorf("empty path param %s", key)
		return "", err, cErr.ValidatePathParamsErr("missing " + key)
	}
	return value, nil, nil
}

// Field 待檢查的欄位名稱與值
type Field struct {
	Name  string
	Value string
}

// RequireNonBlank 手動檢查：trim 後不可為空，依傳入順序回報第一個空白欄位
func RequireNonBlank(fields ...Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return cErr.ValidateErr(f.Name + " must not be blank")
		}
	}
	return nil
}
