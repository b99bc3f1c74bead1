package devbackend

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/whauf/sportscard-tracker/internal/models"
)

type SaleHandler struct {
	db *gorm.DB
}

func NewSaleHandler(db *gorm.DB) *SaleHandler {
	return &SaleHandler{db: db}
}

func parseCardID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// ListCardSales returns a card's sales, newest first
func (h *SaleHandler) ListCardSales(c *gin.Context) {
	cardID, ok := parseCardID(c)
	if !ok {
		return
	}

	sales := []models.Sale{}
	if err := h.db.Where("card_id = ?", cardID).Order("sale_date DESC, id DESC").Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sales)
}

func (h *SaleHandler) GetLastSale(c *gin.Context) {
	cardID, ok := parseCardID(c)
	if !ok {
		return
	}

	var sale models.Sale
	err := h.db.Where("card_id = ?", cardID).Order("sale_date DESC, id DESC").First(&sale).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No sales found for this card"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sale)
}

func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req models.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SalePrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sale_price must be positive"})
		return
	}

	var card models.Card
	if err := h.db.First(&card, req.CardID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}

	sale := req.ToSale(models.Now())
	if err := h.db.Create(&sale).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("Recorded sale %d for card %d: %s on %s", sale.ID, sale.CardID, sale.FormattedPrice(), sale.Platform)
	updateInventoryMetrics(h.db)
	c.JSON(http.StatusCreated, sale)
}
