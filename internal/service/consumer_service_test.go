package service

import (
	"context"
	"testing"
	"time"

	"notetaking-be/internal/dto"
	"notetaking-be/internal/entity"
	"notetaking-be/internal/pkg/logger"
	"notetaking-be/internal/repository/specification"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTopic = "NOTE_EVENTS_TEST"

func TestNoteEventsAreRecordedAsActivity(t *testing.T) {
	f := newNoteFixture(t)
	author := f.createUser(t, "author")

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	consumer := NewConsumerService(pubSub, testTopic, f.uowFactory, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	notes := NewNoteService(f.uowFactory, NewPublisherService(testTopic, pubSub), nil, logger.NewNopLogger())

	created, err := notes.Create(ctx, author, &dto.CreateNoteRequest{Title: "Test Note", Text: "x"})
	require.NoError(t, err)
	require.NoError(t, notes.Delete(ctx, author, created.Slug))

	activities := func() []*entity.NoteActivity {
		uow := f.uowFactory.NewUnitOfWork(context.Background())
		list, err := uow.NoteActivityRepository().FindAll(context.Background(),
			specification.ByNoteID{NoteID: created.Id},
			specification.OrderBy{Field: "created_at"},
		)
		require.NoError(t, err)
		return list
	}

	assert.Eventually(t, func() bool { return len(activities()) == 2 }, 2*time.Second, 20*time.Millisecond)

	actions := map[entity.NoteAction]bool{}
	for _, a := range activities() {
		assert.Equal(t, author, a.UserId)
		assert.Equal(t, "test-note", a.Slug)
		actions[a.Action] = true
	}
	assert.True(t, actions[entity.NoteActionCreated])
	assert.True(t, actions[entity.NoteActionDeleted])
}

func TestMalformedEventIsDropped(t *testing.T) {
	f := newNoteFixture(t)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	consumer := NewConsumerService(pubSub, testTopic, f.uowFactory, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService(testTopic, pubSub)
	require.NoError(t, publisher.Publish(ctx, []byte("{not json")))

	time.Sleep(50 * time.Millisecond)

	uow := f.uowFactory.NewUnitOfWork(context.Background())
	list, err := uow.NoteActivityRepository().FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPublishWithCancelledContext(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewPublisherService(testTopic, pubSub).Publish(ctx, []byte("{}"))
	assert.ErrorIs(t, err, context.Canceled)
}
