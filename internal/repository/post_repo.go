package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/blog-content-api/internal/database"
	"github.com/blog-content-api/internal/models"
	"github.com/lib/pq"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	db *database.DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *database.DB) PostRepository {
	return &postRepo{db: db}
}

// Create inserts a new post. Storage assigns the id and timestamps; the
// foreign key on author_id is the authority on the author reference, so a
// concurrent author delete still loses cleanly here.
func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (title, content, summary, category, author_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Content, post.Summary, post.Category, post.AuthorID,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return models.ErrAuthorRefInvalid
		}
		return err
	}
	return nil
}

// GetByID retrieves a post by ID, returning nil when absent
func (r *postRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `
		SELECT id, title, content, summary, category, author_id, created_at, updated_at
		FROM posts WHERE id = $1
	`

	var post models.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.Summary,
		&post.Category, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// List retrieves all posts ordered by creation time
func (r *postRepo) List(ctx context.Context) ([]*models.Post, error) {
	query := `
		SELECT id, title, content, summary, category, author_id, created_at, updated_at
		FROM posts ORDER BY created_at
	`
	return r.queryPosts(ctx, query)
}

// ListByAuthor retrieves all posts owned by the given author
func (r *postRepo) ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error) {
	query := `
		SELECT id, title, content, summary, category, author_id, created_at, updated_at
		FROM posts WHERE author_id = $1 ORDER BY created_at
	`
	return r.queryPosts(ctx, query, authorID)
}

// Count returns the total number of posts
func (r *postRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&count)
	return count, err
}

func (r *postRepo) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*models.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(
			&post.ID, &post.Title, &post.Content, &post.Summary,
			&post.Category, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}
