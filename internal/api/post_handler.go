package api

import (
	"net/http"

	"github.com/blog-content-api/internal/models"
	"github.com/blog-content-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PostHandler handles post endpoints
type PostHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		log:      log.With().Str("handler", "post").Logger(),
	}
}

// ListPosts handles GET /posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	views, err := h.services.Post.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list posts")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetPost handles GET /posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrPostNotFound.Error()})
		return
	}

	view, err := h.services.Post.Get(c.Request.Context(), id)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.log.Error().Err(err).Str("post_id", id).Msg("Failed to get post")
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.services.Post.Create(c.Request.Context(), &req)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			h.log.Error().Err(err).Msg("Failed to create post")
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}
