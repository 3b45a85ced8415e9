package service

import (
	"context"

	"github.com/blog-content-api/internal/models"
	"github.com/blog-content-api/internal/repository"
	"github.com/rs/zerolog"
)

// postService is the concrete implementation of PostService
type postService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newPostService(repos *repository.Repositories, log zerolog.Logger) PostService {
	return &postService{
		repos: repos,
		log:   log.With().Str("service", "post").Logger(),
	}
}

// Create validates and persists a new post. The author lookup gives the
// common case a cleaner failure; the foreign key remains the authority, so a
// concurrently deleted author still surfaces as an integrity failure on
// insert and nothing is written.
func (s *postService) Create(ctx context.Context, req *models.CreatePostRequest) (*models.PostView, error) {
	post, err := models.NewPost(req)
	if err != nil {
		return nil, err
	}

	author, err := s.repos.Author.GetByID(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.ErrAuthorRefInvalid
	}

	if err := s.repos.Post.Create(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("post_id", post.ID).
		Str("author_id", post.AuthorID).
		Str("category", post.Category).
		Msg("Post created")

	return models.NewPostView(post, author), nil
}

// Get retrieves a single post with its author
func (s *postService) Get(ctx context.Context, id string) (*models.PostView, error) {
	post, err := s.repos.Post.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.ErrPostNotFound
	}

	author, err := s.repos.Author.GetByID(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}

	return models.NewPostView(post, author), nil
}

// List retrieves all posts, each with its author. Authors are fetched once
// per distinct author_id.
func (s *postService) List(ctx context.Context) ([]*models.PostView, error) {
	posts, err := s.repos.Post.List(ctx)
	if err != nil {
		return nil, err
	}

	authors := make(map[string]*models.Author)
	views := make([]*models.PostView, 0, len(posts))
	for _, post := range posts {
		author, ok := authors[post.AuthorID]
		if !ok {
			author, err = s.repos.Author.GetByID(ctx, post.AuthorID)
			if err != nil {
				return nil, err
			}
			authors[post.AuthorID] = author
		}
		views = append(views, models.NewPostView(post, author))
	}
	return views, nil
}

// Count returns the total number of posts
func (s *postService) Count(ctx context.Context) (int, error) {
	return s.repos.Post.Count(ctx)
}
