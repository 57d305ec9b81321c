package http

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/james-eo/task-manager/internal/adapter/http/handlers"
	"github.com/james-eo/task-manager/internal/adapter/http/middleware"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, agentHandler *handlers.AgentHandler) {
	r.GET("/", banner)

	a2a := r.Group("/a2a")
	a2a.Use(middleware.LanguageMiddleware())
	{
		a2a.GET("/health", healthHandler.CheckHealth)
		a2a.GET("/health/report", healthHandler.CheckHealthReport)
		a2a.POST("/agent/taskTracker", agentHandler.HandleMessage)
		a2a.POST("/test", agentHandler.HandleTest)
		a2a.GET("/tasks", agentHandler.ListTasks)
	}
}

func banner(c *gin.Context) {
	c.JSON(200, gin.H{
		"name":    os.Getenv("APP_NAME"),
		"status":  "running",
		"version": handlers.AppVersion(),
		"endpoints": gin.H{
			"health": "/a2a/health",
			"agent":  "/a2a/agent/taskTracker",
			"test":   "/a2a/test",
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
