package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"fx-bothub.backend/internal/domain/entities"
	"fx-bothub.backend/internal/interfaces/http/response"
	"fx-bothub.backend/internal/usecases"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Login authenticates an admin
// POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	auth, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, auth)
}
