package models

// Transport views break the Author<->Post cycle structurally: an AuthorView
// carries its posts as flat Post records (which hold only author_id), and a
// PostView carries its author as a flat Author record (which holds no posts).

// AuthorView is the API representation of an Author with its posts.
type AuthorView struct {
	Author
	Posts []Post `json:"posts"`
}

// NewAuthorView builds an AuthorView. The posts slice is never nil so the
// field serializes as an empty array.
func NewAuthorView(author *Author, posts []*Post) *AuthorView {
	view := &AuthorView{
		Author: *author,
		Posts:  make([]Post, 0, len(posts)),
	}
	for _, post := range posts {
		view.Posts = append(view.Posts, *post)
	}
	return view
}

// PostView is the API representation of a Post with its owning author.
type PostView struct {
	Post
	Author *Author `json:"author,omitempty"`
}

// NewPostView builds a PostView.
func NewPostView(post *Post, author *Author) *PostView {
	return &PostView{
		Post:   *post,
		Author: author,
	}
}
