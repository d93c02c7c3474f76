package router

import (
	"hrdesk/internal/handler"

	"github.com/gin-gonic/gin"
)

// AuthRouter 不經過登入閘門
type AuthRouter struct {
	authHandler *handler.AuthHandler
}

func NewAuthRouter(authHandler *handler.AuthHandler) *AuthRouter {
	return &AuthRouter{authHandler: authHandler}
}

func (ar *AuthRouter) RegisterRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", ar.authHandler.Login)
		auth.POST("/logout", ar.authHandler.Logout)
		auth.GET("/session", ar.authHandler.Session)
	}
}
