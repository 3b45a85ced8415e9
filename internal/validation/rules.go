package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var phoneRegex = regexp.MustCompile(`^\d{10}$`)

// ClickbaitMarkers are the substrings a post title must contain at least one
// of. Matching is case-sensitive.
var ClickbaitMarkers = []string{"Won't Believe", "Secret", "Top", "Guess"}

// Categories are the allowed post categories.
var Categories = []string{"Fiction", "Non-Fiction"}

var categoryValues = func() []interface{} {
	values := make([]interface{}, len(Categories))
	for i, c := range Categories {
		values[i] = c
	}
	return values
}()

// FieldError reports the first rule a candidate field value violated.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Message
}

// check runs the given rules in order and wraps the first rejection in a
// FieldError. Rules are deterministic and side-effect-free.
func check(field string, value interface{}, rules ...validation.Rule) error {
	if err := validation.Validate(value, rules...); err != nil {
		return &FieldError{Field: field, Message: err.Error()}
	}
	return nil
}

// AuthorName accepts any non-empty string.
func AuthorName(name string) error {
	return check("name", name,
		validation.Required.Error("author must have a name"),
	)
}

// AuthorPhoneNumber accepts an absent value, or exactly ten decimal digits.
func AuthorPhoneNumber(phone *string) error {
	if phone == nil {
		return nil
	}
	return check("phone_number", *phone,
		validation.Required.Error("phone number must be exactly ten digits"),
		validation.Match(phoneRegex).Error("phone number must be exactly ten digits"),
	)
}

// PostTitle accepts titles containing at least one clickbait marker.
func PostTitle(title string) error {
	return check("title", title,
		validation.Required.Error(clickbaitMessage()),
		validation.By(containsClickbaitMarker),
	)
}

// PostContent accepts strings of at least 250 characters.
func PostContent(content string) error {
	return check("content", content,
		validation.Required.Error("post content must be at least 250 characters long"),
		validation.RuneLength(250, 0).Error("post content must be at least 250 characters long"),
	)
}

// PostSummary accepts an absent value, or a string of at most 250 characters.
func PostSummary(summary *string) error {
	if summary == nil {
		return nil
	}
	return check("summary", *summary,
		validation.RuneLength(0, 250).Error("post summary cannot exceed 250 characters"),
	)
}

// PostCategory accepts exactly "Fiction" or "Non-Fiction". An absent or empty
// category is rejected, not defaulted.
func PostCategory(category string) error {
	return check("category", category,
		validation.Required.Error("post category must be either 'Fiction' or 'Non-Fiction'"),
		validation.In(categoryValues...).Error("post category must be either 'Fiction' or 'Non-Fiction'"),
	)
}

// PostAuthorID checks presence and UUID shape only. Whether the author exists
// is a cross-row question answered at the storage boundary.
func PostAuthorID(authorID string) error {
	return check("author_id", authorID,
		validation.Required.Error("author_id is required"),
		is.UUID.Error("author_id must be a valid UUID"),
	)
}

func containsClickbaitMarker(value interface{}) error {
	title, _ := value.(string)
	for _, marker := range ClickbaitMarkers {
		if strings.Contains(title, marker) {
			return nil
		}
	}
	return errors.New(clickbaitMessage())
}

func clickbaitMessage() string {
	quoted := make([]string, len(ClickbaitMarkers))
	for i, marker := range ClickbaitMarkers {
		quoted[i] = fmt.Sprintf("'%s'", marker)
	}
	return "post title must contain one of: " + strings.Join(quoted, ", ")
}
