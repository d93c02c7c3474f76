package service

import (
	"context"
	"net/http"
	"testing"

	"hrdesk/internal/dto"

	"go.uber.org/zap"
)

func TestLoginAuthorizeLogout(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.trace, env.conf, zap.NewNop(), env.ws)
	ctx := context.Background()

	_, err := svc.Login(ctx, &dto.LoginDto{Email: "   "})
	assertStatus(t, err, http.StatusBadRequest)

	session, err := svc.Login(ctx, &dto.LoginDto{Email: "anyone@example.com", Password: "ignored"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !session.IsAuthenticated || session.Token == "" {
		t.Fatalf("unexpected session: %+v", session)
	}

	claims, err := svc.Authorize(ctx, session.Token)
	if err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if claims.Email != "anyone@example.com" {
		t.Fatalf("claims email = %q", claims.Email)
	}
	current, _ := svc.Session(ctx)
	if !current.IsAuthenticated || current.UserEmail != "anyone@example.com" {
		t.Fatalf("session = %+v", current)
	}

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	_, err = svc.Authorize(ctx, session.Token)
	assertStatus(t, err, http.StatusUnauthorized)

	current, _ = svc.Session(ctx)
	if current.IsAuthenticated || current.UserEmail != "" {
		t.Fatalf("session should be cleared: %+v", current)
	}
}

func TestAuthorizeRejectsForeignToken(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.trace, env.conf, zap.NewNop(), env.ws)

	_, err := svc.Authorize(context.Background(), "not-a-jwt")
	assertStatus(t, err, http.StatusUnauthorized)
}
