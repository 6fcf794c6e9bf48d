package dto

import (
	"time"

	"github.com/google/uuid"
)

// NoteEventMessage is the payload published on the in-process note topic.
type NoteEventMessage struct {
	Action     string    `json:"action"`
	NoteId     uuid.UUID `json:"note_id"`
	UserId     uuid.UUID `json:"user_id"`
	Slug       string    `json:"slug"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NoteFeedMessage is one frame on the live note feed.
type NoteFeedMessage struct {
	Type string           `json:"type"`
	Data NoteEventMessage `json:"data"`
}
