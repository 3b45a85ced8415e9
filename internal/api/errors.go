package api

import (
	"errors"
	"net/http"

	"github.com/blog-content-api/internal/models"
	"github.com/blog-content-api/internal/validation"
	"github.com/gin-gonic/gin"
)

// statusFor maps a failure to its HTTP status: field rejections and
// integrity violations are the client's fault, missing rows are 404, and
// anything else is a server error.
func statusFor(err error) int {
	var fieldErr *validation.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrDuplicateAuthorName),
		errors.Is(err, models.ErrAuthorRefInvalid):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrAuthorNotFound),
		errors.Is(err, models.ErrPostNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error envelope. Integrity violations surface their
// domain message, never raw constraint names.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
