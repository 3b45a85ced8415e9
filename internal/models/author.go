package models

import (
	"time"

	"github.com/blog-content-api/internal/validation"
)

// Author represents a blog author. ID and timestamps are assigned by storage
// on insert.
type Author struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	PhoneNumber *string   `json:"phone_number" db:"phone_number"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CreateAuthorRequest is the POST /authors payload
type CreateAuthorRequest struct {
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phone_number"`
}

// NewAuthor builds an Author from a request, running each field rule in
// order. It fails on the first rejected field and never returns a partial
// entity. Name uniqueness is enforced by storage, not here.
func NewAuthor(req *CreateAuthorRequest) (*Author, error) {
	if err := validation.AuthorName(req.Name); err != nil {
		return nil, err
	}
	if err := validation.AuthorPhoneNumber(req.PhoneNumber); err != nil {
		return nil, err
	}
	return &Author{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	}, nil
}

// SetName mutates the name after re-validating it. On rejection the entity
// is left unchanged.
func (a *Author) SetName(name string) error {
	if err := validation.AuthorName(name); err != nil {
		return err
	}
	a.Name = name
	a.touch()
	return nil
}

// SetPhoneNumber mutates the phone number after re-validating it.
func (a *Author) SetPhoneNumber(phone *string) error {
	if err := validation.AuthorPhoneNumber(phone); err != nil {
		return err
	}
	a.PhoneNumber = phone
	a.touch()
	return nil
}

func (a *Author) touch() {
	a.UpdatedAt = time.Now()
}
