package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"fx-bothub.backend/internal/domain/entities"
	"fx-bothub.backend/internal/interfaces/http/response"
	"fx-bothub.backend/internal/usecases"
)

// AccountHandler handles broker account endpoints
type AccountHandler struct {
	accountUsecase *usecases.AccountUsecase
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountUsecase *usecases.AccountUsecase) *AccountHandler {
	return &AccountHandler{accountUsecase: accountUsecase}
}

// Create declares a broker account
// POST /api/users/:uid/accounts
func (h *AccountHandler) Create(c *gin.Context) {
	var input entities.CreateBrokerAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accountUsecase.Create(c.Request.Context(), c.Param("uid"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, account)
}

// List lists the user's broker accounts
// GET /api/users/:uid/accounts
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accountUsecase.ListByUser(c.Request.Context(), c.Param("uid"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, accounts)
}
