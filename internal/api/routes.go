package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- AI Planning ---
	plannerGroup := router.Group("/planner")
	{
		plannerGroup.POST("/plan", h.PlanSite) // Plan a site from a free-text prompt
	}

	// --- Project Lifecycle ---
	projectGroup := router.Group("/project")
	{
		projectGroup.POST("/generate", h.GenerateProject)            // Generate a new project from wizard input
		projectGroup.POST("/regenerate/:token", h.RegenerateProject) // Re-roll the layout with a fresh seed
		projectGroup.GET("/:token", h.GetProject)                    // Fetch a project by its edit token
		projectGroup.GET("/:token/export", h.ExportProject)          // Markdown export of the generated site
	}

	// --- Public Sharing ---
	router.GET("/s/:slug", h.GetSharedSite) // Read-only view by share slug

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
