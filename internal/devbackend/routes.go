// Package devbackend is a reference implementation of the card backend REST
// API, used for local development and for contract tests of the client.
package devbackend

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/whauf/sportscard-tracker/internal/metrics"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	router := gin.Default()
	router.Use(metrics.GinMiddleware())

	cardHandler := NewCardHandler(db)
	saleHandler := NewSaleHandler(db)

	api := router.Group("/api")
	{
		cards := api.Group("/cards")
		{
			cards.GET("", cardHandler.ListCards)
			cards.POST("", cardHandler.CreateCard)
			cards.GET("/search", cardHandler.SearchCards)
			cards.GET("/:id/sales", saleHandler.ListCardSales)
			cards.GET("/:id/last-sale", saleHandler.GetLastSale)
		}

		api.POST("/sales", saleHandler.CreateSale)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
