package models

import (
	"time"

	"github.com/blog-content-api/internal/validation"
)

// Post represents a blog post owned by an Author. ID and timestamps are
// assigned by storage on insert.
type Post struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Summary   *string   `json:"summary" db:"summary"`
	Category  string    `json:"category" db:"category"`
	AuthorID  string    `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreatePostRequest is the POST /posts payload
type CreatePostRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Summary  *string `json:"summary"`
	Category string  `json:"category"`
	AuthorID string  `json:"author_id"`
}

// NewPost builds a Post from a request, running each field rule in order. It
// fails on the first rejected field and never returns a partial entity.
// Whether the referenced author exists is enforced by storage.
func NewPost(req *CreatePostRequest) (*Post, error) {
	if err := validation.PostTitle(req.Title); err != nil {
		return nil, err
	}
	if err := validation.PostContent(req.Content); err != nil {
		return nil, err
	}
	if err := validation.PostSummary(req.Summary); err != nil {
		return nil, err
	}
	if err := validation.PostCategory(req.Category); err != nil {
		return nil, err
	}
	if err := validation.PostAuthorID(req.AuthorID); err != nil {
		return nil, err
	}
	return &Post{
		Title:    req.Title,
		Content:  req.Content,
		Summary:  req.Summary,
		Category: req.Category,
		AuthorID: req.AuthorID,
	}, nil
}

// SetTitle mutates the title after re-validating it. On rejection the entity
// is left unchanged.
func (p *Post) SetTitle(title string) error {
	if err := validation.PostTitle(title); err != nil {
		return err
	}
	p.Title = title
	p.touch()
	return nil
}

// SetContent mutates the content after re-validating it.
func (p *Post) SetContent(content string) error {
	if err := validation.PostContent(content); err != nil {
		return err
	}
	p.Content = content
	p.touch()
	return nil
}

// SetSummary mutates the summary after re-validating it.
func (p *Post) SetSummary(summary *string) error {
	if err := validation.PostSummary(summary); err != nil {
		return err
	}
	p.Summary = summary
	p.touch()
	return nil
}

// SetCategory mutates the category after re-validating it.
func (p *Post) SetCategory(category string) error {
	if err := validation.PostCategory(category); err != nil {
		return err
	}
	p.Category = category
	p.touch()
	return nil
}

func (p *Post) touch() {
	p.UpdatedAt = time.Now()
}
