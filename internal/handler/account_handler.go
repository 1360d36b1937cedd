package handler

import (
	"context"
	"net/http"

	"github.com/eaglebank/bank-api/internal/middleware"
	"github.com/eaglebank/bank-api/internal/models"
	"github.com/eaglebank/bank-api/internal/service"
	"github.com/gin-gonic/gin"
)

// AccountService defines the account operations used by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, userID string, params service.CreateAccountParams) (*models.Account, error)
	GetAccount(ctx context.Context, callerID, accountID string) (*models.Account, error)
}

// AccountHandler adapts the account HTTP surface onto the service.
type AccountHandler struct {
	accounts AccountService
}

func NewAccountHandler(accounts AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type CreateAccountRequest struct {
	Name        string `json:"name" validate:"required"`
	AccountType string `json:"accountType" validate:"required,oneof=personal business"`
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	callerID, _ := middleware.GetUserID(c)

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	account, err := h.accounts.CreateAccount(c.Request.Context(), callerID, service.CreateAccountParams{
		Name:        req.Name,
		AccountType: req.AccountType,
	})
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID := c.Param("accountId")
	callerID, _ := middleware.GetUserID(c)

	account, err := h.accounts.GetAccount(c.Request.Context(), callerID, accountID)
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}
