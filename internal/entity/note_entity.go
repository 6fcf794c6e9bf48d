package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID
	Title     string
	Text      string
	Slug      string
	AuthorId  uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// IsOwnedBy reports whether userId authored the note.
func (n *Note) IsOwnedBy(userId uuid.UUID) bool {
	return userId != uuid.Nil && n.AuthorId == userId
}
