package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"fx-bothub.backend/internal/domain/entities"
	"fx-bothub.backend/internal/interfaces/http/response"
	"fx-bothub.backend/internal/usecases"
	"fx-bothub.backend/pkg/utils"
)

// BotRequestHandler handles admin review of bot requests
type BotRequestHandler struct {
	assignmentUsecase *usecases.AssignmentUsecase
}

// NewBotRequestHandler creates a new bot request handler
func NewBotRequestHandler(assignmentUsecase *usecases.AssignmentUsecase) *BotRequestHandler {
	return &BotRequestHandler{assignmentUsecase: assignmentUsecase}
}

// List lists all bot requests with owner identity. With limit=0 (the
// default) all requests come back on a single page.
// GET /api/admin/bot-requests?page=&limit=
func (h *BotRequestHandler) List(c *gin.Context) {
	var query utils.PaginationParams
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	params := utils.GetPaginationParams(query.Page, query.Limit)

	views, err := h.assignmentUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	total := int64(len(views))
	if params.Limit > 0 {
		offset := params.CalculateOffset()
		if offset > len(views) {
			offset = len(views)
		}
		end := offset + params.Limit
		if end > len(views) {
			end = len(views)
		}
		views = views[offset:end]
	}

	response.Success(c, http.StatusOK, gin.H{
		"requests": views,
		"meta":     utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Get fetches one bot request
// GET /api/admin/bot-requests/:id
func (h *BotRequestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}

	view, err := h.assignmentUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

// Approve approves a bot request
// PUT /api/admin/bot-requests/:id/approve
func (h *BotRequestHandler) Approve(c *gin.Context) {
	h.review(c, entities.StatusApproved)
}

// Reject rejects a bot request
// PUT /api/admin/bot-requests/:id/reject
func (h *BotRequestHandler) Reject(c *gin.Context) {
	h.review(c, entities.StatusRejected)
}

func (h *BotRequestHandler) review(c *gin.Context, decision entities.ApprovalStatus) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}

	if err := h.assignmentUsecase.Review(c.Request.Context(), id, decision); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "status": decision})
}
