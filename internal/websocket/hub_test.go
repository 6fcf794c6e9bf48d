package websocket

import (
	"context"
	"testing"
	"time"

	"notetaking-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, userID uuid.UUID) *Client {
	return &Client{Hub: hub, UserID: userID, Send: make(chan []byte, sendBufferSize)}
}

func TestHubDeliversToOwnerOnly(t *testing.T) {
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	owner, other := uuid.New(), uuid.New()
	ownerClient := newTestClient(hub, owner)
	otherClient := newTestClient(hub, other)
	require.True(t, hub.Register(ownerClient))
	require.True(t, hub.Register(otherClient))

	assert.Eventually(t, func() bool { return hub.ClientCount(owner) == 1 }, time.Second, 10*time.Millisecond)

	hub.Send(owner, []byte(`{"type":"note_event"}`))

	select {
	case msg := <-ownerClient.Send:
		assert.JSONEq(t, `{"type":"note_event"}`, string(msg))
	case <-time.After(time.Second):
		t.Fatal("owner did not receive the message")
	}
	assert.Empty(t, otherClient.Send)
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	userID := uuid.New()
	client := newTestClient(hub, userID)
	require.True(t, hub.Register(client))
	hub.Unregister(client)

	assert.Eventually(t, func() bool { return hub.ClientCount(userID) == 0 }, time.Second, 10*time.Millisecond)
	_, open := <-client.Send
	assert.False(t, open)
}

func TestHubStopsWithContext(t *testing.T) {
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}

	assert.False(t, hub.Register(newTestClient(hub, uuid.New())))
}
