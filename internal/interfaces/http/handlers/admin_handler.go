package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"fx-bothub.backend/internal/interfaces/http/response"
	"fx-bothub.backend/internal/usecases"
	"fx-bothub.backend/pkg/utils"
)

// AdminHandler handles the admin user listing, approval and dashboard
// stats endpoints.
type AdminHandler struct {
	adminUsecase      *usecases.AdminUsecase
	onboardingUsecase *usecases.OnboardingUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	adminUsecase *usecases.AdminUsecase,
	onboardingUsecase *usecases.OnboardingUsecase,
) *AdminHandler {
	return &AdminHandler{
		adminUsecase:      adminUsecase,
		onboardingUsecase: onboardingUsecase,
	}
}

// ListUsers lists registered users, optionally filtered by search term.
// With limit=0 (the default) all users are returned on a single page.
// GET /api/admin/users?search=&page=&limit=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query utils.PaginationParams
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	params := utils.GetPaginationParams(query.Page, query.Limit)

	users, err := h.adminUsecase.ListUsers(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	total := int64(len(users))
	if params.Limit > 0 {
		offset := params.CalculateOffset()
		if offset > len(users) {
			offset = len(users)
		}
		end := offset + params.Limit
		if end > len(users) {
			end = len(users)
		}
		users = users[offset:end]
	}

	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"meta":  utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// ApproveUser grants platform access to a pending user
// PUT /api/admin/users/:id/approve
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	if err := h.onboardingUsecase.Approve(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "status": "approved"})
}

// DeleteUser removes a user record
// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	if err := h.onboardingUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// Stats returns the dashboard summary counters
// GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
