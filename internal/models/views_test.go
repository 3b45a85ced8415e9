package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func testEntities(t *testing.T) (*Author, *Post) {
	t.Helper()
	now := time.Now()
	author := &Author{
		ID:        testAuthorID,
		Name:      "Octavia Butler",
		CreatedAt: now,
		UpdatedAt: now,
	}
	post := &Post{
		ID:        "6f1c8f0a-0a55-4f8e-9a35-0d6f5f2d9b11",
		Title:     "Top 10 Secrets of Go",
		Content:   strings.Repeat("x", 250),
		Category:  "Fiction",
		AuthorID:  author.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return author, post
}

func TestAuthorViewOmitsAuthorBackReference(t *testing.T) {
	author, post := testEntities(t)

	view := NewAuthorView(author, []*Post{post})
	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	posts, ok := decoded["posts"].([]interface{})
	if !ok || len(posts) != 1 {
		t.Fatalf("posts = %v, want one entry", decoded["posts"])
	}
	nested := posts[0].(map[string]interface{})
	if _, has := nested["author"]; has {
		t.Error("nested post carries an author back-reference")
	}
	if nested["author_id"] != author.ID {
		t.Errorf("nested post author_id = %v, want %v", nested["author_id"], author.ID)
	}
}

func TestAuthorViewPostsSerializeAsEmptyArray(t *testing.T) {
	author, _ := testEntities(t)

	raw, err := json.Marshal(NewAuthorView(author, nil))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(raw), `"posts":[]`) {
		t.Errorf("expected empty posts array, got %s", raw)
	}
}

func TestPostViewOmitsPostsBackReference(t *testing.T) {
	author, post := testEntities(t)

	raw, err := json.Marshal(NewPostView(post, author))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	nested, ok := decoded["author"].(map[string]interface{})
	if !ok {
		t.Fatalf("author = %v, want object", decoded["author"])
	}
	if _, has := nested["posts"]; has {
		t.Error("nested author carries a posts back-reference")
	}
	if nested["name"] != author.Name {
		t.Errorf("nested author name = %v, want %v", nested["name"], author.Name)
	}
	if decoded["summary"] != nil {
		t.Errorf("absent summary should serialize as null, got %v", decoded["summary"])
	}
}
