package request

import (
	"errors"
	"regexp"
	"strings"

	cErr "hrdesk/internal/pkg/error"

	"github.com/go-playground/validator/v10"
)

// Validator 由 DTO 實作，提供 "欄位.tag" 對應的錯誤訊息
type Validator interface {
	GetMessages() ValidatorMessages
}

type ValidatorMessages map[string]string

var indexPattern = regexp.MustCompile(`\[\d+\]`)

// GetError 將 binding 錯誤轉成 ValidateErr，優先使用 DTO 自訂訊息
func GetError(req any, err error) *cErr.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err != nil {
			return cErr.ValidateErr(err.Error())
		}
		return cErr.ValidateErr("Parameter error")
	}

	custom, _ := req.(Validator)
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if custom != nil {
			field := indexPattern.ReplaceAllString(fe.Field(), ".*")
			if msg, ok := custom.GetMessages()[field+"."+fe.Tag()]; ok {
				messages = append(messages, msg)
				continue
			}
		}
		messages = append(messages, fe.Field()+" failed on "+fe.Tag())
	}
	return cErr.ValidateErr(strings.Join(messages, "; "))
}
