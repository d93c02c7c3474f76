package i18n

import (
	"context"
	"testing"

	"hrdesk/config"

	"go.uber.org/zap"
)

func newTestTranslator(t *testing.T, locale string) *Translator {
	t.Helper()
	conf := &config.Configuration{}
	conf.App.Locale = locale
	tr, err := NewTranslator(conf, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTranslator: %v", err)
	}
	return tr
}

func TestStatusUsesContextLocale(t *testing.T) {
	tr := newTestTranslator(t, "en")

	if got := tr.Status(context.Background(), "complaint", "in-progress"); got != "In Progress" {
		t.Fatalf("default locale: got %q", got)
	}
	ctx := WithLocale(context.Background(), "zh-TW,zh;q=0.9")
	if got := tr.Status(ctx, "complaint", "in-progress"); got != "處理中" {
		t.Fatalf("zh-TW: got %q", got)
	}
}

func TestStatusFallsBackToRawValue(t *testing.T) {
	tr := newTestTranslator(t, "en")
	if got := tr.Status(context.Background(), "complaint", "archived"); got != "archived" {
		t.Fatalf("got %q", got)
	}
	var nilTr *Translator
	if got := nilTr.Status(context.Background(), "complaint", "active"); got != "active" {
		t.Fatalf("nil translator: got %q", got)
	}
}
