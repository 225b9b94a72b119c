package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Project Lifecycle ---
	projectGroup := router.Group("/project")
	{
		// Generate a new project from a prompt
		projectGroup.POST("/generate", h.GenerateSite)
		// Apply an edit instruction to an existing project
		projectGroup.POST("/:id/edit", h.EditSite)
		// Get the files for a specific project
		projectGroup.GET("/:id/files", h.GetProjectFiles)
	}

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
