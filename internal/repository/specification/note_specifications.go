package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BySlug struct {
	Slug string
}

func (s BySlug) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("slug = ?", s.Slug)
}

type NoteOwnedByUser struct {
	UserID uuid.UUID
}

func (s NoteOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.user_id = ?", s.UserID)
}

type ByNoteID struct {
	NoteID uuid.UUID
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ?", s.NoteID)
}
