package service

import "errors"

// FieldRequiredMessage is shown against a field left empty or blank.
const FieldRequiredMessage = "This field is required."

// SlugWarning is appended to a conflicting slug to build the form error.
const SlugWarning = " - such a slug already exists, please choose a unique value!"

var (
	// ErrNoteNotFound covers both "no such note" and "not your note".
	ErrNoteNotFound = errors.New("note not found")

	// ErrAuthenticationRequired is returned for anonymous actors.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrSlugUnresolvable is returned when no slug was given and the title
	// slugifies to nothing (e.g. punctuation only).
	ErrSlugUnresolvable = errors.New("could not derive a slug from the title")

	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// DuplicateSlugError reports a slug already used by another note.
type DuplicateSlugError struct {
	Slug string
}

func (e *DuplicateSlugError) Error() string {
	return e.Slug + SlugWarning
}

// RequiredFieldError reports a note field that is empty after trimming.
type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return e.Field + ": " + FieldRequiredMessage
}
