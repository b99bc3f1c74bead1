package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/whauf/sportscard-tracker/internal/api/handlers"
	"github.com/whauf/sportscard-tracker/internal/metrics"
	"github.com/whauf/sportscard-tracker/internal/services"
)

// RouterConfig carries the HTTP-facing settings of the view server
type RouterConfig struct {
	AllowedOrigins   []string
	FrontendDistPath string
}

func SetupRouter(shell *services.Shell, cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(metrics.GinMiddleware())

	serveFrontend := cfg.FrontendDistPath != "" && dirExists(cfg.FrontendDistPath)

	config := cors.DefaultConfig()
	config.AllowOrigins = cfg.AllowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	config.AllowCredentials = false // Explicitly set
	router.Use(cors.New(config))

	viewHandler := handlers.NewViewHandler(shell)
	salesHandler := handlers.NewSalesHandler(shell)

	view := router.Group("/view")
	{
		cards := view.Group("/cards")
		{
			cards.GET("", viewHandler.GetCards)
			cards.POST("", viewHandler.AddCard)
			cards.GET("/:id/sales", salesHandler.GetSalesHistory)
		}

		view.PUT("/criteria", viewHandler.UpdateCriteria)
		view.POST("/refresh", viewHandler.Refresh)
		view.GET("/grade-options", viewHandler.GetGradeOptions)
		view.GET("/notification", viewHandler.GetNotification)
		view.DELETE("/notification/:id", viewHandler.DismissNotification)
		view.POST("/sales", salesHandler.AddSale)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":       "ok",
			"cards":        len(shell.State().Cards),
			"last_refresh": shell.LastRefresh(),
		})
	})

	// Serve frontend static files
	if serveFrontend {
		indexPath := filepath.Join(cfg.FrontendDistPath, "index.html")

		router.Static("/static", filepath.Join(cfg.FrontendDistPath, "static"))

		router.GET("/", func(c *gin.Context) {
			c.File(indexPath)
		})

		// SPA fallback - serve index.html for all non-API routes
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path

			if strings.HasPrefix(path, "/view") {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}

			c.File(indexPath)
		})
	}

	return router
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
