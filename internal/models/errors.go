package models

import "errors"

// Integrity and lookup failures surfaced by the storage boundary. Field-level
// rejections are validation.FieldError values; everything else is unexpected.
var (
	ErrAuthorNotFound      = errors.New("author not found")
	ErrPostNotFound        = errors.New("post not found")
	ErrDuplicateAuthorName = errors.New("author with this name already exists")
	ErrAuthorRefInvalid    = errors.New("failed to create post: ensure author_id references an existing author")
)
