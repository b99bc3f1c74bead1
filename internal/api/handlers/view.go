package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whauf/sportscard-tracker/internal/models"
	"github.com/whauf/sportscard-tracker/internal/services"
)

type ViewHandler struct {
	shell *services.Shell
}

func NewViewHandler(shell *services.Shell) *ViewHandler {
	return &ViewHandler{shell: shell}
}

// GetCards returns the rendered card table. Filter query parameters, when
// present, are evaluated against the snapshot without touching the stored
// criteria; otherwise the stored criteria apply.
func (h *ViewHandler) GetCards(c *gin.Context) {
	query := c.Request.URL.Query()
	if !services.HasCriteriaParams(query) {
		c.JSON(http.StatusOK, h.shell.View())
		return
	}

	c.JSON(http.StatusOK, h.shell.ViewFor(services.CriteriaFromQuery(query)))
}

// UpdateCriteria stores new filter criteria. Bursts of updates are debounced,
// so the change is accepted rather than applied.
func (h *ViewHandler) UpdateCriteria(c *gin.Context) {
	var criteria services.Criteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.shell.SetCriteria(criteria)
	c.JSON(http.StatusAccepted, gin.H{"criteria": criteria.Normalize()})
}

// Refresh refetches the card snapshot from the backend
func (h *ViewHandler) Refresh(c *gin.Context) {
	if err := h.shell.Refresh(c.Request.Context()); err != nil {
		c.JSON(backendErrorStatus(err), gin.H{"error": "Error loading cards", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.shell.View())
}

func (h *ViewHandler) AddCard(c *gin.Context) {
	var req models.CreateCardRequest
	// Validation is the backend's job; only malformed JSON is refused here
	if err := c.ShouldBindJSON(&req); err != nil && !isValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.shell.AddCard(c.Request.Context(), req)
	if err != nil {
		c.JSON(backendErrorStatus(err), gin.H{"error": "Error adding card", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, card)
}

func (h *ViewHandler) GetGradeOptions(c *gin.Context) {
	service := c.Query("grading_service")
	c.JSON(http.StatusOK, gin.H{
		"grading_service": service,
		"options":         models.GradeOptionsFor(service),
	})
}

func (h *ViewHandler) GetNotification(c *gin.Context) {
	notification, ok := h.shell.Notifier().Current()
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, notification)
}

func (h *ViewHandler) DismissNotification(c *gin.Context) {
	if !h.shell.Notifier().Dismiss(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
