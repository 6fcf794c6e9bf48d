package entity

import (
	"time"

	"github.com/google/uuid"
)

type NoteAction string

const (
	NoteActionCreated NoteAction = "NOTE_CREATED"
	NoteActionUpdated NoteAction = "NOTE_UPDATED"
	NoteActionDeleted NoteAction = "NOTE_DELETED"
)

// NoteActivity is one entry of the note audit trail.
type NoteActivity struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	UserId    uuid.UUID
	Action    NoteAction
	Slug      string
	CreatedAt time.Time
}
