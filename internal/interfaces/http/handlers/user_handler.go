package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"fx-bothub.backend/internal/domain/entities"
	"fx-bothub.backend/internal/interfaces/http/response"
	"fx-bothub.backend/internal/usecases"
)

// UserHandler handles user registration and lookup endpoints
type UserHandler struct {
	onboardingUsecase *usecases.OnboardingUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(onboardingUsecase *usecases.OnboardingUsecase) *UserHandler {
	return &UserHandler{onboardingUsecase: onboardingUsecase}
}

// Register handles user registration
// POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.onboardingUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// Get fetches a user record with its routing decision
// GET /api/users/:uid
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.onboardingUsecase.GetByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// GetProfile fetches a user record with its KYC profile
// GET /api/users/:uid/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.onboardingUsecase.GetProfile(c.Request.Context(), c.Param("uid"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}
