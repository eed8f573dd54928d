package routes

import (
	_ "buyback_service/docs" // generated by swag init
	"buyback_service/internal/adapter/http/handlers"
	"buyback_service/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Quotes    *handlers.QuoteHandler
	Pricing   *handlers.PricingHandler
	Reminders *handlers.ReminderHandler
}

// Options tune the router for the running environment.
type Options struct {
	Production bool
	CronSecret string
}

// New builds the gin engine with middlewares, docs, metrics and /v1 routes.
func New(h Handlers, opts Options, log *zap.Logger) *gin.Engine {
	if opts.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(router, h, opts)
	return router
}

func getRoutes(router *gin.Engine, h Handlers, opts Options) {
	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, h.Quotes)
	addPricingRoutes(v1, h.Pricing)
	addAdminRoutes(v1, h.Pricing)
	addCronRoutes(v1, h.Reminders, opts.CronSecret)
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(logger.GinMiddleware(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.FullPath()))
		c.AbortWithStatus(500)
	}))
}
