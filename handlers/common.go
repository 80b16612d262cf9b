package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eraflix/services/apperr"
	"eraflix/utils"
)

// respondError translates a service-layer error into an HTTP response.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *apperr.ValidationError
		conflictErr   *apperr.ConflictError
		notFoundErr   *apperr.NotFoundError
		authErr       *apperr.AuthError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "message": validationErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflict", "message": conflictErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found", "message": notFoundErr.Error()})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "message": authErr.Error()})
	default:
		utils.GetLogger().Error("internal error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
