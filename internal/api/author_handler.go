package api

import (
	"net/http"

	"github.com/blog-content-api/internal/models"
	"github.com/blog-content-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuthorHandler handles author endpoints
type AuthorHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAuthorHandler creates a new AuthorHandler
func NewAuthorHandler(services *service.Services, log zerolog.Logger) *AuthorHandler {
	return &AuthorHandler{
		services: services,
		log:      log.With().Str("handler", "author").Logger(),
	}
}

// ListAuthors handles GET /authors
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	views, err := h.services.Author.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list authors")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetAuthor handles GET /authors/:id
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		// An id that cannot name any row is indistinguishable from a missing one
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrAuthorNotFound.Error()})
		return
	}

	view, err := h.services.Author.Get(c.Request.Context(), id)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.log.Error().Err(err).Str("author_id", id).Msg("Failed to get author")
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateAuthor handles POST /authors
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req models.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.services.Author.Create(c.Request.Context(), &req)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.log.Error().Err(err).Msg("Failed to create author")
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}
