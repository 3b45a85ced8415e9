package repository

import (
	"context"

	"github.com/blog-content-api/internal/database"
	"github.com/blog-content-api/internal/models"
)

// AuthorRepository defines the interface for author data operations.
// Implementations enforce name uniqueness atomically at commit time and own
// the cascade from an author to its posts.
type AuthorRepository interface {
	Create(ctx context.Context, author *models.Author) error
	GetByID(ctx context.Context, id string) (*models.Author, error)
	List(ctx context.Context) ([]*models.Author, error)
	NameExists(ctx context.Context, name string) (bool, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// PostRepository defines the interface for post data operations.
// Implementations enforce the author foreign key atomically at commit time.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Author AuthorRepository
	Post   PostRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Author: NewAuthorRepo(db),
		Post:   NewPostRepo(db),
	}
}
