package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"xeo/cmd/api/auth"
	"xeo/cmd/api/dto"
	"xeo/cmd/api/handlers"
	"xeo/cmd/api/middleware"
	"xeo/cmd/api/services"
	"xeo/db"
	_ "xeo/docs"
	"xeo/metrics"
)

// Deps 는 라우터가 엮는 서비스와 인증 의존성이다.
type Deps struct {
	Analysis *services.AnalysisService
	Optimize *services.OptimizeService
	Advice   *services.AdviceService
	Admin    *services.AdminService
	JWT      *auth.JWTManager
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "healthy", Service: "XEO API"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/post/analyze", handlers.AnalyzePostHandler(deps.Analysis))
		api.POST("/post/optimize", handlers.OptimizeHandler(deps.Optimize))
		api.POST("/post/apply-tips", handlers.ApplyTipsHandler(deps.Optimize))
		api.GET("/profile/:username/analyze", handlers.AnalyzeProfileHandler(deps.Analysis))
		api.POST("/advice", handlers.AdviceHandler(deps.Advice))
		api.GET("/advice/personas", handlers.PersonasHandler())
		api.GET("/opportunity", handlers.OpportunityHandler(deps.Analysis))

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware(deps.JWT))
		{
			admin.POST("/cache/cleanup", handlers.AdminCleanupCacheHandler(deps.Admin))
			admin.GET("/stats", handlers.AdminStatsHandler(deps.Admin))
		}
	}

	return r
}
