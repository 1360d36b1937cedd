package handler

import (
	"errors"
	"net/http"

	"github.com/eaglebank/bank-api/internal/errs"
	"github.com/eaglebank/bank-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithDomainError maps the service error taxonomy onto HTTP status
// codes. Client-facing failures carry the error text; anything unclassified
// is a 500 with no internal detail leaked.
func respondWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalid):
		middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		middleware.RespondWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		middleware.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		middleware.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		middleware.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
