package handler

import (
	"errors"
	"net/http"

	"github.com/BTulkas/Foster-Finder/internal/apperrors"
	"github.com/BTulkas/Foster-Finder/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP status codes. Anything
// unrecognized becomes a 500 with the given fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	var validationErr *apperrors.ValidationError
	var conflictErr *apperrors.ConflictError

	switch {
	case errors.As(err, &validationErr):
		utils.ErrorResponse(c, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &conflictErr):
		utils.ErrorResponse(c, http.StatusConflict, conflictErr.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "not found")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, fallback)
	}
}
