package service

import (
	"context"

	"github.com/blog-content-api/internal/models"
	"github.com/blog-content-api/internal/repository"
	"github.com/rs/zerolog"
)

// AuthorService defines the interface for author operations
type AuthorService interface {
	Create(ctx context.Context, req *models.CreateAuthorRequest) (*models.AuthorView, error)
	Get(ctx context.Context, id string) (*models.AuthorView, error)
	List(ctx context.Context) ([]*models.AuthorView, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// PostService defines the interface for post operations
type PostService interface {
	Create(ctx context.Context, req *models.CreatePostRequest) (*models.PostView, error)
	Get(ctx context.Context, id string) (*models.PostView, error)
	List(ctx context.Context) ([]*models.PostView, error)
	Count(ctx context.Context) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Author AuthorService
	Post   PostService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Author: newAuthorService(repos, log),
		Post:   newPostService(repos, log),
	}
}
