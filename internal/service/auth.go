package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hrdesk/config"
	"hrdesk/internal/core"
	"hrdesk/internal/dto"
	cErr "hrdesk/internal/pkg/error"
	"hrdesk/internal/telemetry"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// AuthService 對應前端的登入閘門：任何非空 email 都能登入，不驗證密碼
type AuthService struct {
	trace  *telemetry.Trace
	config *config.Configuration
	logger *zap.Logger
	ws     *Workspace
}

func NewAuthService(trace *telemetry.Trace, config *config.Configuration, logger *zap.Logger, ws *Workspace) *AuthService {
	return &AuthService{trace: trace, config: config, logger: logger, ws: ws}
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginDto) (*dto.SessionDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, cErr.ValidateErr("email is required")
	}
	if err := s.ws.IsAuthenticated.Set(ctx, true); err != nil {
		return nil, storeError("save session flag", err)
	}
	if err := s.ws.UserEmail.Set(ctx, email); err != nil {
		return nil, storeError("save session email", err)
	}

	expiresAt := nowFunc().Add(time.Duration(s.config.Auth.TokenTTL) * time.Second)
	token, err := s.signToken(email, expiresAt)
	if err != nil {
		return nil, cErr.InternalServer("sign session token failed")
	}
	s.logger.Info("login", zap.String("email", email))
	return &dto.SessionDto{IsAuthenticated: true, UserEmail: email, Token: token, ExpiresAt: expiresAt.Unix()}, nil
}

// Logout 清掉兩個 session slot
func (s *AuthService) Logout(ctx context.Context) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.ws.IsAuthenticated.Clear(ctx); err != nil {
		return storeError("clear session flag", err)
	}
	if err := s.ws.UserEmail.Clear(ctx); err != nil {
		return storeError("clear session email", err)
	}
	return nil
}

func (s *AuthService) Session(ctx context.Context) (*dto.SessionDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	authenticated, err := s.ws.IsAuthenticated.Get(ctx)
	if err != nil {
		return nil, storeError("get session flag", err)
	}
	email, err := s.ws.UserEmail.Get(ctx)
	if err != nil {
		return nil, storeError("get session email", err)
	}
	return &dto.SessionDto{IsAuthenticated: authenticated, UserEmail: email}, nil
}

// Authorize token 必須有效且 is-authenticated 仍為 true
func (s *AuthService) Authorize(ctx context.Context, token string) (*core.Claims, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, cErr.InvalidSession("invalid session token")
	}
	authenticated, err := s.ws.IsAuthenticated.Get(ctx)
	if err != nil {
		return nil, storeError("get session flag", err)
	}
	if !authenticated {
		return nil, cErr.Unauthorized("not logged in")
	}
	return claims, nil
}

func (s *AuthService) signToken(email string, expiresAt time.Time) (string, error) {
	claims := core.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.App.Name,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(nowFunc()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.App.SecretKey))
}

func (s *AuthService) parseToken(raw string) (*core.Claims, error) {
	claims := &core.Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.config.App.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token invalid")
	}
	return claims, nil
}
