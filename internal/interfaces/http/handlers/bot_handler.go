package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"fx-bothub.backend/internal/domain/entities"
	"fx-bothub.backend/internal/interfaces/http/response"
	"fx-bothub.backend/internal/usecases"
)

// BotHandler handles the user-facing bot endpoints: the public catalog
// and a user's own bot requests.
type BotHandler struct {
	assignmentUsecase *usecases.AssignmentUsecase
	catalogUsecase    *usecases.CatalogUsecase
}

// NewBotHandler creates a new bot handler
func NewBotHandler(
	assignmentUsecase *usecases.AssignmentUsecase,
	catalogUsecase *usecases.CatalogUsecase,
) *BotHandler {
	return &BotHandler{
		assignmentUsecase: assignmentUsecase,
		catalogUsecase:    catalogUsecase,
	}
}

// Catalog lists the bot catalog for users
// GET /api/bots/catalog
func (h *BotHandler) Catalog(c *gin.Context) {
	bots, err := h.catalogUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, bots)
}

// Request requests a bot for one of the user's broker accounts
// POST /api/users/:uid/bots
func (h *BotHandler) Request(c *gin.Context) {
	var input entities.CreateBotAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.assignmentUsecase.Create(c.Request.Context(), c.Param("uid"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, view)
}

// List lists the user's bot requests
// GET /api/users/:uid/bots
func (h *BotHandler) List(c *gin.Context) {
	views, err := h.assignmentUsecase.ListByUser(c.Request.Context(), c.Param("uid"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, views)
}
