package mapper

import (
	"testing"
	"time"

	"notetaking-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNoteMapperRoundTrip(t *testing.T) {
	m := NewNoteMapper()
	now := time.Now()
	note := &entity.Note{
		Id:        uuid.New(),
		Title:     "Test Note",
		Text:      "This is a test note",
		Slug:      "test-note",
		AuthorId:  uuid.New(),
		CreatedAt: now,
	}

	row := m.ToModel(note)
	assert.Equal(t, note.AuthorId, row.UserId)
	assert.True(t, row.UpdatedAt.IsZero())

	back := m.ToEntity(row)
	assert.Equal(t, note, back)
}

func TestNoteMapperNil(t *testing.T) {
	m := NewNoteMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}
