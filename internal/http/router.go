package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	healthController := NewHealthController(cfg.Snapshot, cfg.Scheduler, cfg.Version)
	router.GET("/health", healthController.Status)

	bookmarksController := NewBookmarksController(cfg.Snapshot, cfg.Scheduler)
	api := router.Group("/api")
	{
		api.GET("/bookmarks", bookmarksController.List)
		api.POST("/bookmarks/refresh", bookmarksController.Refresh)
	}

	return router
}
