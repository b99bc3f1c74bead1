package devbackend

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/whauf/sportscard-tracker/internal/metrics"
	"github.com/whauf/sportscard-tracker/internal/models"
	"github.com/whauf/sportscard-tracker/internal/services"
)

type CardHandler struct {
	db *gorm.DB
}

func NewCardHandler(db *gorm.DB) *CardHandler {
	return &CardHandler{db: db}
}

func (h *CardHandler) ListCards(c *gin.Context) {
	cards := []models.Card{}
	if err := h.db.Order("id").Find(&cards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := attachLastSales(h.db, cards); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cards)
}

// SearchCards applies the same constraints as services.FilterCards, in SQL.
// instr() keeps the player-name match case-sensitive where LIKE would not.
func (h *CardHandler) SearchCards(c *gin.Context) {
	criteria := services.CriteriaFromQuery(c.Request.URL.Query()).Normalize()

	query := h.db.Model(&models.Card{})
	if criteria.PlayerName != "" {
		query = query.Where("instr(player_name, ?) > 0", criteria.PlayerName)
	}
	if criteria.Sport != "" {
		query = query.Where("sport = ?", criteria.Sport)
	}
	if criteria.CardVariant != "" {
		query = query.Where("card_variant = ?", criteria.CardVariant)
	}
	if criteria.GradingService != "" {
		query = query.Where("grading_service = ?", criteria.GradingService)
	}
	if criteria.Grade != "" {
		query = query.Where("grade = ?", criteria.Grade)
	}

	cards := []models.Card{}
	if err := query.Order("id").Find(&cards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := attachLastSales(h.db, cards); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) CreateCard(c *gin.Context) {
	var req models.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card := req.ToCard()
	card.CreatedAt = models.Now()

	if err := h.db.Create(&card).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("Created card %d: %s", card.ID, card.DisplayTitle())
	updateInventoryMetrics(h.db)
	c.JSON(http.StatusCreated, card)
}

// attachLastSales sets LastSale on each card to its newest sale by date,
// breaking ties by the higher sale id
func attachLastSales(db *gorm.DB, cards []models.Card) error {
	if len(cards) == 0 {
		return nil
	}

	ids := make([]int, len(cards))
	for i := range cards {
		ids[i] = cards[i].ID
	}

	var sales []models.Sale
	if err := db.Where("card_id IN ?", ids).Order("sale_date DESC, id DESC").Find(&sales).Error; err != nil {
		return err
	}

	latest := make(map[int]*models.Sale, len(cards))
	for i := range sales {
		if _, ok := latest[sales[i].CardID]; !ok {
			latest[sales[i].CardID] = &sales[i]
		}
	}
	for i := range cards {
		cards[i].LastSale = latest[cards[i].ID]
	}
	return nil
}

func updateInventoryMetrics(db *gorm.DB) {
	var cards, sales int64
	if err := db.Model(&models.Card{}).Count(&cards).Error; err == nil {
		metrics.InventoryCardsTotal.Set(float64(cards))
	}
	if err := db.Model(&models.Sale{}).Count(&sales).Error; err == nil {
		metrics.InventorySalesTotal.Set(float64(sales))
	}
}
