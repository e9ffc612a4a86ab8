package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/subvault/subvault-api/internal/api/shared/errors"
	"github.com/subvault/subvault-api/internal/logger"
)

// respondError writes err as an API error. Errors that are not API errors
// are logged and reported as a generic internal error.
func respondError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode(), apiErr.Response())
		return
	}

	logger.ErrorCtx(c.Request.Context(), err)
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message).Response())
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...).Response())
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message).Response())
}

// respondAuthError writes the flat {error} body used by the sign-in endpoints.
// Domain errors keep their status; anything else is logged and becomes a 500.
func respondAuthError(c *gin.Context, err error) {
	if apiErr := apierrors.FromDomainError(err); apiErr != nil {
		c.JSON(apiErr.StatusCode(), gin.H{"error": apiErr.Message})
		return
	}

	logger.ErrorCtx(c.Request.Context(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
