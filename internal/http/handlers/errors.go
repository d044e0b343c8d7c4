package handlers

import (
	"net/http"

	"clicktoride/internal/domain"
	"clicktoride/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func requestID(c *gin.Context) string {
	return middleware.GetRequestID(c)
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	default:
		RespondError(c, http.StatusInternalServerError, "something went wrong", err)
	}
}
