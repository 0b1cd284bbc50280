package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"fx-bothub.backend/internal/domain/entities"
	"fx-bothub.backend/internal/interfaces/http/response"
	"fx-bothub.backend/internal/usecases"
)

// KycHandler handles KYC submission and admin review endpoints
type KycHandler struct {
	kycUsecase *usecases.KycUsecase
}

// NewKycHandler creates a new KYC handler
func NewKycHandler(kycUsecase *usecases.KycUsecase) *KycHandler {
	return &KycHandler{kycUsecase: kycUsecase}
}

// Submit handles the one-shot KYC form submission
// POST /api/users/:uid/kyc
func (h *KycHandler) Submit(c *gin.Context) {
	var input entities.SubmitKycInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.kycUsecase.Submit(c.Request.Context(), c.Param("uid"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, profile)
}

// ListRequests lists all KYC submissions for review
// GET /api/admin/kyc-requests
func (h *KycHandler) ListRequests(c *gin.Context) {
	requests, err := h.kycUsecase.ListRequests(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, requests)
}

// GetRequest fetches one KYC submission for review
// GET /api/admin/kyc-requests/:id
func (h *KycHandler) GetRequest(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	request, err := h.kycUsecase.GetRequest(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, request)
}

// Approve approves a user's KYC submission
// PUT /api/admin/kyc-requests/:id/approve
func (h *KycHandler) Approve(c *gin.Context) {
	h.review(c, entities.StatusApproved)
}

// Reject rejects a user's KYC submission
// PUT /api/admin/kyc-requests/:id/reject
func (h *KycHandler) Reject(c *gin.Context) {
	h.review(c, entities.StatusRejected)
}

func (h *KycHandler) review(c *gin.Context, decision entities.ApprovalStatus) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	if err := h.kycUsecase.Review(c.Request.Context(), userID, decision); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": userID, "kycStatus": decision})
}
