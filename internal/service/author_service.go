package service

import (
	"context"

	"github.com/blog-content-api/internal/models"
	"github.com/blog-content-api/internal/repository"
	"github.com/rs/zerolog"
)

// authorService is the concrete implementation of AuthorService
type authorService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newAuthorService(repos *repository.Repositories, log zerolog.Logger) AuthorService {
	return &authorService{
		repos: repos,
		log:   log.With().Str("service", "author").Logger(),
	}
}

// Create validates and persists a new author. The unique constraint remains
// the authority on duplicate names; the NameExists pre-check only gives the
// common case a cleaner path, a concurrent duplicate still fails on insert.
func (s *authorService) Create(ctx context.Context, req *models.CreateAuthorRequest) (*models.AuthorView, error) {
	author, err := models.NewAuthor(req)
	if err != nil {
		return nil, err
	}

	exists, err := s.repos.Author.NameExists(ctx, author.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrDuplicateAuthorName
	}

	if err := s.repos.Author.Create(ctx, author); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("author_id", author.ID).
		Str("name", author.Name).
		Msg("Author created")

	return models.NewAuthorView(author, nil), nil
}

// Get retrieves a single author with its posts
func (s *authorService) Get(ctx context.Context, id string) (*models.AuthorView, error) {
	author, err := s.repos.Author.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.ErrAuthorNotFound
	}

	posts, err := s.repos.Post.ListByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	return models.NewAuthorView(author, posts), nil
}

// List retrieves all authors, each with its posts
func (s *authorService) List(ctx context.Context) ([]*models.AuthorView, error) {
	authors, err := s.repos.Author.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*models.AuthorView, 0, len(authors))
	for _, author := range authors {
		posts, err := s.repos.Post.ListByAuthor(ctx, author.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, models.NewAuthorView(author, posts))
	}
	return views, nil
}

// Delete removes an author and, through the repository's transaction, every
// post it owns. Not routed over HTTP; kept for admin tooling.
func (s *authorService) Delete(ctx context.Context, id string) error {
	if err := s.repos.Author.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("author_id", id).Msg("Author deleted with posts")
	return nil
}

// Count returns the total number of authors
func (s *authorService) Count(ctx context.Context) (int, error) {
	return s.repos.Author.Count(ctx)
}
