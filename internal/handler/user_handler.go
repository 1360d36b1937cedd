package handler

import (
	"context"
	"net/http"

	"github.com/eaglebank/bank-api/internal/middleware"
	"github.com/eaglebank/bank-api/internal/models"
	"github.com/eaglebank/bank-api/internal/service"
	"github.com/gin-gonic/gin"
)

// UserService defines the user operations used by UserHandler.
type UserService interface {
	CreateUser(ctx context.Context, params service.CreateUserParams) (*models.User, error)
	GetUser(ctx context.Context, callerID, userID string) (*models.User, error)
	PatchUser(ctx context.Context, callerID, userID string, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, callerID, userID string) error
}

// UserHandler adapts the user HTTP surface onto the service.
type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

// AddressRequest is the creation-path address payload: every field except
// line3 must be non-blank when an address is supplied.
type AddressRequest struct {
	Line1    string `json:"line1" validate:"required"`
	Line2    string `json:"line2" validate:"required"`
	Line3    string `json:"line3"`
	Town     string `json:"town" validate:"required"`
	County   string `json:"county" validate:"required"`
	Postcode string `json:"postcode" validate:"required"`
}

type CreateUserRequest struct {
	Name        string          `json:"name" validate:"required"`
	Email       string          `json:"email" validate:"required,email"`
	PhoneNumber string          `json:"phoneNumber"`
	Address     *AddressRequest `json:"address"`
}

// UpdateUserRequest is the partial-update payload. Absent fields leave the
// stored values untouched.
type UpdateUserRequest struct {
	Name        *string              `json:"name"`
	Email       *string              `json:"email" validate:"omitempty,email"`
	PhoneNumber *string              `json:"phoneNumber"`
	Address     *models.AddressPatch `json:"address"`
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	params := service.CreateUserParams{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if req.Address != nil {
		params.Address = &models.Address{
			Line1:    req.Address.Line1,
			Line2:    req.Address.Line2,
			Line3:    req.Address.Line3,
			Town:     req.Address.Town,
			County:   req.Address.County,
			Postcode: req.Address.Postcode,
		}
	}

	user, err := h.users.CreateUser(c.Request.Context(), params)
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("userId")
	callerID, _ := middleware.GetUserID(c)

	user, err := h.users.GetUser(c.Request.Context(), callerID, userID)
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := c.Param("userId")
	callerID, _ := middleware.GetUserID(c)

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	user, err := h.users.PatchUser(c.Request.Context(), callerID, userID, models.UserPatch{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("userId")
	callerID, _ := middleware.GetUserID(c)

	if err := h.users.DeleteUser(c.Request.Context(), callerID, userID); err != nil {
		respondWithDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
