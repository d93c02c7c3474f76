package router

import (
	docs "hrdesk/cmd/docs"
	"hrdesk/config"
	"hrdesk/internal/handler"
	"hrdesk/internal/middleware"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var ProviderSet = wire.NewSet(
	NewRouter,
	NewHealthRouter,
	NewAuthRouter,
	NewPeopleRouter,
	NewWorkplaceRouter,
	NewAdminRouter,
)

// NewRouter middleware 順序：request context → trace → log → cors → recovery → response
func NewRouter(
	config *config.Configuration,
	requestContext *middleware.RequestContext,
	traceEntry *middleware.TraceEntry,
	recovery *middleware.Recovery,
	cors *middleware.Cors,
	logger *middleware.Logger,
	responseMiddleware *middleware.Response,
	session *middleware.Session,
	wsHandler *handler.WebSocketHandler,
	healthRouter *HealthRouter,
	authRouter *AuthRouter,
	peopleRouter *PeopleRouter,
	workplaceRouter *WorkplaceRouter,
	adminRouter *AdminRouter,
) *gin.Engine {

	switch config.App.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(requestContext.Handler())
	router.Use(traceEntry.Handler())
	router.Use(logger.LoggerHandler())
	router.Use(cors.CorsHandler())
	router.Use(recovery.ErrorHandler())
	router.Use(responseMiddleware.FormatHandler())

	healthRouter.RegisterHealthRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if config.App.SwaggerEnabled {
		router.GET("/swagger/*any", func(c *gin.Context) {
			docs.SwaggerInfo.Host = c.Request.Host
			if config.App.Env == "production" {
				docs.SwaggerInfo.Schemes = []string{"https"}
			}
		}, ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authRouter.RegisterRoutes(router)

	// 以下路由都要通過登入閘門
	protected := router.Group("/", session.Handler())
	peopleRouter.RegisterRoutes(protected)
	workplaceRouter.RegisterRoutes(protected)
	adminRouter.RegisterRoutes(protected)
	protected.GET("/ws", wsHandler.Serve)

	pprof.Register(router)
	return router
}
