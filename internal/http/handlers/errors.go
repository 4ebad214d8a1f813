package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxiops/internal/domain"
)

// RespondDomainError maps domain errors to HTTP responses. Internal errors
// never leak their cause to the client.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	default:
		RespondError(c, http.StatusInternalServerError, "something went wrong", nil)
	}
}
