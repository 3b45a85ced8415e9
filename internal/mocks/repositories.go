package mocks

import (
	"context"
	"time"

	"github.com/blog-content-api/internal/models"
	"github.com/google/uuid"
)

// MockAuthorRepository is a mock implementation of repository.AuthorRepository.
// It mirrors the storage contract: ids assigned on insert, duplicate names
// rejected, deletes cascading into the linked post repository.
type MockAuthorRepository struct {
	Authors      map[string]*models.Author
	NameToAuthor map[string]*models.Author
	Posts        *MockPostRepository // cascade target, may be nil
	ForcedErr    error
	CreateCalls  int

	order []string
}

func NewMockAuthorRepository() *MockAuthorRepository {
	return &MockAuthorRepository{
		Authors:      make(map[string]*models.Author),
		NameToAuthor: make(map[string]*models.Author),
	}
}

// NewMockRepositories builds a linked author/post pair that enforces the
// foreign key and the delete cascade across the two.
func NewMockRepositories() (*MockAuthorRepository, *MockPostRepository) {
	authorRepo := NewMockAuthorRepository()
	postRepo := NewMockPostRepository()
	authorRepo.Posts = postRepo
	postRepo.Authors = authorRepo
	return authorRepo, postRepo
}

func (m *MockAuthorRepository) Create(ctx context.Context, author *models.Author) error {
	m.CreateCalls++
	if m.ForcedErr != nil {
		return m.ForcedErr
	}
	if _, exists := m.NameToAuthor[author.Name]; exists {
		return models.ErrDuplicateAuthorName
	}

	now := time.Now()
	author.ID = uuid.NewString()
	author.CreatedAt = now
	author.UpdatedAt = now

	m.Authors[author.ID] = author
	m.NameToAuthor[author.Name] = author
	m.order = append(m.order, author.ID)
	return nil
}

func (m *MockAuthorRepository) GetByID(ctx context.Context, id string) (*models.Author, error) {
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	return m.Authors[id], nil
}

func (m *MockAuthorRepository) List(ctx context.Context) ([]*models.Author, error) {
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	authors := make([]*models.Author, 0, len(m.order))
	for _, id := range m.order {
		if author, ok := m.Authors[id]; ok {
			authors = append(authors, author)
		}
	}
	return authors, nil
}

func (m *MockAuthorRepository) NameExists(ctx context.Context, name string) (bool, error) {
	if m.ForcedErr != nil {
		return false, m.ForcedErr
	}
	_, exists := m.NameToAuthor[name]
	return exists, nil
}

func (m *MockAuthorRepository) Delete(ctx context.Context, id string) error {
	if m.ForcedErr != nil {
		return m.ForcedErr
	}
	author, ok := m.Authors[id]
	if !ok {
		return models.ErrAuthorNotFound
	}

	if m.Posts != nil {
		m.Posts.deleteByAuthor(id)
	}
	delete(m.Authors, id)
	delete(m.NameToAuthor, author.Name)
	return nil
}

func (m *MockAuthorRepository) Count(ctx context.Context) (int, error) {
	if m.ForcedErr != nil {
		return 0, m.ForcedErr
	}
	return len(m.Authors), nil
}

// MockPostRepository is a mock implementation of repository.PostRepository
type MockPostRepository struct {
	Posts       map[string]*models.Post
	Authors     *MockAuthorRepository // FK source, may be nil
	ForcedErr   error
	CreateCalls int

	order []string
}

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		Posts: make(map[string]*models.Post),
	}
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	m.CreateCalls++
	if m.ForcedErr != nil {
		return m.ForcedErr
	}
	if m.Authors != nil {
		if _, ok := m.Authors.Authors[post.AuthorID]; !ok {
			return models.ErrAuthorRefInvalid
		}
	}

	now := time.Now()
	post.ID = uuid.NewString()
	post.CreatedAt = now
	post.UpdatedAt = now

	m.Posts[post.ID] = post
	m.order = append(m.order, post.ID)
	return nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	return m.Posts[id], nil
}

func (m *MockPostRepository) List(ctx context.Context) ([]*models.Post, error) {
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	posts := make([]*models.Post, 0, len(m.order))
	for _, id := range m.order {
		if post, ok := m.Posts[id]; ok {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *MockPostRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error) {
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	var posts []*models.Post
	for _, id := range m.order {
		if post, ok := m.Posts[id]; ok && post.AuthorID == authorID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *MockPostRepository) Count(ctx context.Context) (int, error) {
	if m.ForcedErr != nil {
		return 0, m.ForcedErr
	}
	return len(m.Posts), nil
}

func (m *MockPostRepository) deleteByAuthor(authorID string) {
	for id, post := range m.Posts {
		if post.AuthorID == authorID {
			delete(m.Posts, id)
		}
	}
}
