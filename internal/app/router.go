package app

import (
	"github.com/haritzismaildev/smart-learning-sub001/internal/config"
	"github.com/haritzismaildev/smart-learning-sub001/internal/middleware"
	"github.com/haritzismaildev/smart-learning-sub001/internal/model"
	"github.com/haritzismaildev/smart-learning-sub001/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		// Session ledger
		authGroup.POST("/sessions", c.session.Open)
		authGroup.PUT("/sessions/:sessionId/close", c.session.Close)
		authGroup.GET("/sessions/:sessionId", c.session.Get)
		authGroup.GET("/users/:userId/sessions", c.session.List)

		// Attempt recorder
		authGroup.POST("/attempts", c.attempt.Record)
		authGroup.GET("/sessions/:sessionId/attempts", c.attempt.List)

		// Statistics
		authGroup.GET("/users/:userId/statistics", c.statistics.GetStatistics)
		authGroup.GET("/users/:userId/statistics/overall", c.statistics.GetOverall)

		// Parent view
		parent := authGroup.Group("/parent")
		parent.Use(middleware.RoleMiddleware(model.Parent))
		{
			parent.GET("/children/progress", c.statistics.GetChildrenProgress)
		}

		// Admin listing
		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.Admin, model.SuperAdmin))
		{
			admin.GET("/sessions", c.admin.ListSessions)
		}
	}
}
