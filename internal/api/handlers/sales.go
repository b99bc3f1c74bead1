package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/whauf/sportscard-tracker/internal/models"
	"github.com/whauf/sportscard-tracker/internal/services"
)

type SalesHandler struct {
	shell *services.Shell
}

func NewSalesHandler(shell *services.Shell) *SalesHandler {
	return &SalesHandler{shell: shell}
}

func (h *SalesHandler) GetSalesHistory(c *gin.Context) {
	cardID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	history, err := h.shell.SalesHistory(c.Request.Context(), cardID)
	if err != nil {
		c.JSON(backendErrorStatus(err), gin.H{"error": "Error loading sales history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *SalesHandler) AddSale(c *gin.Context) {
	var req models.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !isValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sale, err := h.shell.AddSale(c.Request.Context(), req)
	if err != nil {
		c.JSON(backendErrorStatus(err), gin.H{"error": "Error adding sale", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sale)
}
