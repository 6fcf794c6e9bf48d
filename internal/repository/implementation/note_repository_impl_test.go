package implementation

import (
	"context"
	"errors"
	"testing"
	"time"

	"notetaking-be/internal/entity"
	"notetaking-be/internal/model"
	"notetaking-be/internal/repository/contract"
	"notetaking-be/internal/repository/specification"
	"notetaking-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteRepository(t *testing.T) contract.NoteRepository {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:", "silent")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db, model.All()...))

	return NewNoteRepository(db)
}

func newNote(userId uuid.UUID, slug string) *entity.Note {
	return &entity.Note{
		Id:        uuid.New(),
		Title:     "Title",
		Text:      "Text",
		Slug:      slug,
		AuthorId:  userId,
		CreatedAt: time.Now(),
	}
}

func TestCreateTranslatesUniqueViolation(t *testing.T) {
	repo := newNoteRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newNote(uuid.New(), "test-note")))

	err := repo.Create(ctx, newNote(uuid.New(), "test-note"))
	assert.ErrorIs(t, err, contract.ErrDuplicateKey)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFindOneAppliesOwnership(t *testing.T) {
	repo := newNoteRepository(t)
	ctx := context.Background()
	owner := uuid.New()

	note := newNote(owner, "test-note")
	require.NoError(t, repo.Create(ctx, note))

	found, err := repo.FindOne(ctx, specification.BySlug{Slug: "test-note"}, specification.NoteOwnedByUser{UserID: owner})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, note.Id, found.Id)
	assert.Equal(t, owner, found.AuthorId)

	found, err = repo.FindOne(ctx, specification.BySlug{Slug: "test-note"}, specification.NoteOwnedByUser{UserID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCountExcludingSelf(t *testing.T) {
	repo := newNoteRepository(t)
	ctx := context.Background()

	note := newNote(uuid.New(), "test-note")
	require.NoError(t, repo.Create(ctx, note))

	count, err := repo.Count(ctx, specification.BySlug{Slug: "test-note"}, specification.ExcludeID{ID: note.Id})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestTranslateWriteError(t *testing.T) {
	assert.NoError(t, translateWriteError(nil))
	assert.ErrorIs(t, translateWriteError(errors.New("UNIQUE constraint failed: notes.slug")), contract.ErrDuplicateKey)
	assert.ErrorIs(t, translateWriteError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_notes_slug" (SQLSTATE 23505)`)), contract.ErrDuplicateKey)

	other := errors.New("disk full")
	assert.Equal(t, other, translateWriteError(other))
}
