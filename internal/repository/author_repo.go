package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/blog-content-api/internal/database"
	"github.com/blog-content-api/internal/models"
	"github.com/lib/pq"
)

// authorRepo is the concrete implementation of AuthorRepository
type authorRepo struct {
	db *database.DB
}

// NewAuthorRepo creates a new author repository
func NewAuthorRepo(db *database.DB) AuthorRepository {
	return &authorRepo{db: db}
}

// Create inserts a new author. Storage assigns the id and timestamps; the
// unique constraint on name is the authority on duplicates.
func (r *authorRepo) Create(ctx context.Context, author *models.Author) error {
	query := `
		INSERT INTO authors (name, phone_number)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, author.Name, author.PhoneNumber).
		Scan(&author.ID, &author.CreatedAt, &author.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return models.ErrDuplicateAuthorName
		}
		return err
	}
	return nil
}

// GetByID retrieves an author by ID, returning nil when absent
func (r *authorRepo) GetByID(ctx context.Context, id string) (*models.Author, error) {
	query := `SELECT id, name, phone_number, created_at, updated_at FROM authors WHERE id = $1`

	var author models.Author
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&author.ID, &author.Name, &author.PhoneNumber,
		&author.CreatedAt, &author.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &author, nil
}

// List retrieves all authors ordered by creation time
func (r *authorRepo) List(ctx context.Context) ([]*models.Author, error) {
	query := `SELECT id, name, phone_number, created_at, updated_at FROM authors ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []*models.Author
	for rows.Next() {
		var author models.Author
		err := rows.Scan(
			&author.ID, &author.Name, &author.PhoneNumber,
			&author.CreatedAt, &author.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		authors = append(authors, &author)
	}
	return authors, rows.Err()
}

// NameExists checks if an author with the given name exists
func (r *authorRepo) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM authors WHERE name = $1)", name).Scan(&exists)
	return exists, err
}

// Delete removes an author and all of its posts in one transaction. Posts go
// first so no orphan can survive a partial failure.
func (r *authorRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM posts WHERE author_id = $1", id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM authors WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrAuthorNotFound
	}

	return tx.Commit()
}

// Count returns the total number of authors
func (r *authorRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM authors").Scan(&count)
	return count, err
}
