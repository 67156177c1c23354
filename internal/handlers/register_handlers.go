package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/money_coach_app/cmd/docs"
	portssvc "github.com/SscSPs/money_coach_app/internal/core/ports/services"
	"github.com/SscSPs/money_coach_app/internal/middleware"
	"github.com/SscSPs/money_coach_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// writeLimiter throttles the endpoints that record or validate transactions; nil disables it.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	writeLimiter *limiter.Limiter,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, writeLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the per-resource registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	writeLimiter *limiter.Limiter,
) {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	var writeMW []gin.HandlerFunc
	if writeLimiter != nil {
		writeMW = append(writeMW, middleware.RateLimit(writeLimiter))
	}

	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, middleware.WithIssuer(cfg.JWTIssuer)))

	registerEngineRoutes(v1, services.Engine, loc, writeMW...)
	registerTransactionRoutes(v1, services.Transaction, writeMW...)
	registerConfigRoutes(v1, services.Config)
	registerInsightsRoutes(v1, services.Insights, loc)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
