package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/blog-content-api/internal/mocks"
	"github.com/blog-content-api/internal/models"
	"github.com/blog-content-api/internal/repository"
	"github.com/blog-content-api/internal/service"
	"github.com/blog-content-api/internal/validation"
	"github.com/rs/zerolog"
)

func strPtr(s string) *string {
	return &s
}

func setupServices() (*service.Services, *mocks.MockAuthorRepository, *mocks.MockPostRepository) {
	authorRepo, postRepo := mocks.NewMockRepositories()
	repos := &repository.Repositories{Author: authorRepo, Post: postRepo}
	return service.NewServices(repos, zerolog.Nop()), authorRepo, postRepo
}

func createAuthor(t *testing.T, services *service.Services, name string) *models.AuthorView {
	t.Helper()
	view, err := services.Author.Create(context.Background(), &models.CreateAuthorRequest{Name: name})
	if err != nil {
		t.Fatalf("Create author %q failed: %v", name, err)
	}
	return view
}

func postRequest(authorID string) *models.CreatePostRequest {
	return &models.CreatePostRequest{
		Title:    "Guess What Compiles",
		Content:  strings.Repeat("gopher ", 40), // 280 chars
		Category: "Fiction",
		AuthorID: authorID,
	}
}

func TestAuthorService_Create(t *testing.T) {
	services, authorRepo, _ := setupServices()
	ctx := context.Background()

	view, err := services.Author.Create(ctx, &models.CreateAuthorRequest{
		Name:        "Octavia Butler",
		PhoneNumber: strPtr("5551234567"),
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if view.ID == "" {
		t.Error("created author has no storage-assigned id")
	}
	if view.CreatedAt.IsZero() || view.UpdatedAt.IsZero() {
		t.Error("created author has no storage-assigned timestamps")
	}
	if view.Posts == nil || len(view.Posts) != 0 {
		t.Errorf("new author posts = %v, want empty array", view.Posts)
	}
	if authorRepo.CreateCalls != 1 {
		t.Errorf("repo Create calls = %d, want 1", authorRepo.CreateCalls)
	}
}

func TestAuthorService_CreateInvalidSkipsStorage(t *testing.T) {
	services, authorRepo, _ := setupServices()

	_, err := services.Author.Create(context.Background(), &models.CreateAuthorRequest{Name: ""})
	var fieldErr *validation.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected *validation.FieldError, got %v", err)
	}
	if authorRepo.CreateCalls != 0 {
		t.Error("validation failure still reached the repository")
	}
}

func TestAuthorService_CreateDuplicateName(t *testing.T) {
	services, authorRepo, _ := setupServices()
	ctx := context.Background()

	first := createAuthor(t, services, "Octavia Butler")

	_, err := services.Author.Create(ctx, &models.CreateAuthorRequest{Name: "Octavia Butler"})
	if !errors.Is(err, models.ErrDuplicateAuthorName) {
		t.Fatalf("expected ErrDuplicateAuthorName, got %v", err)
	}

	// First author persisted unchanged
	stored, _ := authorRepo.GetByID(ctx, first.ID)
	if stored == nil || stored.Name != "Octavia Butler" {
		t.Error("winning author was disturbed by the losing insert")
	}
	if len(authorRepo.Authors) != 1 {
		t.Errorf("author count = %d, want 1", len(authorRepo.Authors))
	}
}

func TestAuthorService_GetNotFound(t *testing.T) {
	services, _, _ := setupServices()

	_, err := services.Author.Get(context.Background(), "550e8400-e29b-41d4-a716-446655440000")
	if !errors.Is(err, models.ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound, got %v", err)
	}
}

func TestAuthorService_ListGroupsPostsByOwner(t *testing.T) {
	services, _, _ := setupServices()
	ctx := context.Background()

	alice := createAuthor(t, services, "Alice Walker")
	bob := createAuthor(t, services, "Bob Shaw")

	if _, err := services.Post.Create(ctx, postRequest(alice.ID)); err != nil {
		t.Fatalf("Create post failed: %v", err)
	}
	req := postRequest(alice.ID)
	req.Title = "Top Secret Follow-Up"
	if _, err := services.Post.Create(ctx, req); err != nil {
		t.Fatalf("Create post failed: %v", err)
	}

	views, err := services.Author.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("List() returned %d authors, want 2", len(views))
	}
	if len(views[0].Posts) != 2 {
		t.Errorf("author %q has %d posts, want 2", alice.Name, len(views[0].Posts))
	}
	if len(views[1].Posts) != 0 {
		t.Errorf("author %q has %d posts, want 0", bob.Name, len(views[1].Posts))
	}
}

func TestAuthorService_DeleteCascades(t *testing.T) {
	services, authorRepo, postRepo := setupServices()
	ctx := context.Background()

	author := createAuthor(t, services, "Alice Walker")
	other := createAuthor(t, services, "Bob Shaw")

	if _, err := services.Post.Create(ctx, postRequest(author.ID)); err != nil {
		t.Fatalf("Create post failed: %v", err)
	}
	if _, err := services.Post.Create(ctx, postRequest(other.ID)); err != nil {
		t.Fatalf("Create post failed: %v", err)
	}

	if err := services.Author.Delete(ctx, author.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	if _, ok := authorRepo.Authors[author.ID]; ok {
		t.Error("author survived delete")
	}
	remaining, _ := postRepo.List(ctx)
	for _, post := range remaining {
		if post.AuthorID == author.ID {
			t.Error("orphan post survived its author's deletion")
		}
	}
	if len(remaining) != 1 {
		t.Errorf("remaining posts = %d, want 1", len(remaining))
	}

	if err := services.Author.Delete(ctx, author.ID); !errors.Is(err, models.ErrAuthorNotFound) {
		t.Errorf("second delete expected ErrAuthorNotFound, got %v", err)
	}
}

func TestPostService_Create(t *testing.T) {
	services, _, _ := setupServices()
	ctx := context.Background()

	author := createAuthor(t, services, "Alice Walker")

	view, err := services.Post.Create(ctx, postRequest(author.ID))
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if view.ID == "" {
		t.Error("created post has no storage-assigned id")
	}
	if view.Author == nil || view.Author.ID != author.ID {
		t.Error("post view does not embed its author")
	}
}

func TestPostService_CreateUnknownAuthor(t *testing.T) {
	services, _, postRepo := setupServices()

	_, err := services.Post.Create(context.Background(), postRequest("550e8400-e29b-41d4-a716-446655440000"))
	if !errors.Is(err, models.ErrAuthorRefInvalid) {
		t.Fatalf("expected ErrAuthorRefInvalid, got %v", err)
	}
	if len(postRepo.Posts) != 0 {
		t.Error("post row was created despite the integrity failure")
	}
}

func TestPostService_CreateInvalidSkipsStorage(t *testing.T) {
	services, _, postRepo := setupServices()
	author := createAuthor(t, services, "Alice Walker")

	req := postRequest(author.ID)
	req.Content = "too short"
	_, err := services.Post.Create(context.Background(), req)
	var fieldErr *validation.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected *validation.FieldError, got %v", err)
	}
	if fieldErr.Field != "content" {
		t.Errorf("failing field = %q, want content", fieldErr.Field)
	}
	if postRepo.CreateCalls != 0 {
		t.Error("validation failure still reached the repository")
	}
}

func TestPostService_GetNotFound(t *testing.T) {
	services, _, _ := setupServices()

	_, err := services.Post.Get(context.Background(), "550e8400-e29b-41d4-a716-446655440000")
	if !errors.Is(err, models.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_ListEmbedsAuthors(t *testing.T) {
	services, _, _ := setupServices()
	ctx := context.Background()

	author := createAuthor(t, services, "Alice Walker")
	if _, err := services.Post.Create(ctx, postRequest(author.ID)); err != nil {
		t.Fatalf("Create post failed: %v", err)
	}

	views, err := services.Post.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("List() returned %d posts, want 1", len(views))
	}
	if views[0].Author == nil || views[0].Author.Name != "Alice Walker" {
		t.Error("listed post does not embed its author")
	}
}

func TestServiceCounts(t *testing.T) {
	services, _, _ := setupServices()
	ctx := context.Background()

	author := createAuthor(t, services, "Alice Walker")
	if _, err := services.Post.Create(ctx, postRequest(author.ID)); err != nil {
		t.Fatalf("Create post failed: %v", err)
	}

	if n, _ := services.Author.Count(ctx); n != 1 {
		t.Errorf("author count = %d, want 1", n)
	}
	if n, _ := services.Post.Count(ctx); n != 1 {
		t.Errorf("post count = %d, want 1", n)
	}
}
