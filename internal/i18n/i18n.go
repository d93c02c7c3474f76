package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"hrdesk/config"

	"github.com/google/wire"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var ProviderSet = wire.NewSet(NewTranslator)

type ctxKey struct{}

// Translator 狀態標籤翻譯，語系由 context 帶入（Accept-Language）
type Translator struct {
	bundle        *i18n.Bundle
	defaultLocale string
}

func NewTranslator(conf *config.Configuration, logger *zap.Logger) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", e.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", e.Name(), err)
		}
	}

	locale := conf.App.Locale
	if locale == "" {
		locale = "en"
	}
	logger.Debug("i18n loaded", zap.Int("locales", len(entries)), zap.String("default", locale))
	return &Translator{bundle: bundle, defaultLocale: locale}, nil
}

// WithLocale 把 Accept-Language 原字串放進 context
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxKey{}, locale)
}

func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return v
	}
	return ""
}

// T 找不到翻譯時回傳 messageID
func (t *Translator) T(ctx context.Context, messageID string) string {
	if t == nil {
		return messageID
	}
	l := i18n.NewLocalizer(t.bundle, LocaleFromContext(ctx), t.defaultLocale)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

// Status 例如 Status(ctx, "complaint", "in-progress")
func (t *Translator) Status(ctx context.Context, kind string, status string) string {
	id := "status." + kind + "." + status
	if label := t.T(ctx, id); label != id {
		return label
	}
	return status
}
