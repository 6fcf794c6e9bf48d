package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"notetaking-be/internal/dto"
	"notetaking-be/internal/entity"
	"notetaking-be/internal/model"
	"notetaking-be/internal/pkg/logger"
	"notetaking-be/internal/repository/unitofwork"
	"notetaking-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []dto.NoteEventMessage
}

func (p *recordingPublisher) Publish(_ context.Context, payload []byte) error {
	var msg dto.NoteEventMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, msg)
	return nil
}

func (p *recordingPublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Action)
	}
	return out
}

type noteFixture struct {
	db         *gorm.DB
	uowFactory unitofwork.RepositoryFactory
	publisher  *recordingPublisher
	notes      INoteService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:", "silent")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db, model.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newNoteFixture(t *testing.T) *noteFixture {
	t.Helper()

	db := newTestDB(t)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	publisher := &recordingPublisher{}

	return &noteFixture{
		db:         db,
		uowFactory: uowFactory,
		publisher:  publisher,
		notes:      NewNoteService(uowFactory, publisher, nil, logger.NewNopLogger()),
	}
}

// createUser inserts a user row directly; password hashing is not under test here.
func (f *noteFixture) createUser(t *testing.T, username string) uuid.UUID {
	t.Helper()

	user := &entity.User{
		Id:           uuid.New(),
		Username:     username,
		PasswordHash: "x",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, f.uowFactory.NewUnitOfWork(context.Background()).UserRepository().Create(context.Background(), user))
	return user.Id
}

func (f *noteFixture) count(t *testing.T) int64 {
	t.Helper()

	n, err := f.notes.Count(context.Background())
	require.NoError(t, err)
	return n
}
