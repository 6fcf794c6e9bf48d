package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"notetaking-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	hubModule      = "Hub"
	clusterChannel = "note_feed"
)

type clusterMessage struct {
	Origin       string          `json:"origin"`
	TargetUserID uuid.UUID       `json:"target_user_id"`
	Message      json.RawMessage `json:"message"`
}

// Hub tracks open feed connections per user and delivers note events to
// them. With Redis configured, events are relayed so a user connected to
// another instance still receives them.
type Hub struct {
	// Registered clients map: UserID -> List of Clients (multi-device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu sync.RWMutex

	// Redis connection for cross-instance communication, may be nil
	rdb *redis.Client

	// instanceID lets an instance skip its own relayed messages
	instanceID string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID][]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

// Run processes registrations until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info(hubModule, "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()
		}
	}
}

// Register adds a client. It is a no-op once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// remove must be called with h.mu held.
func (h *Hub) remove(client *Client) {
	clients := h.clients[client.UserID]
	for i, c := range clients {
		if c == client {
			h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.UserID]) == 0 {
		delete(h.clients, client.UserID)
		h.logger.Info(hubModule, "Client completely unregistered", map[string]interface{}{"user_id": client.UserID})
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, clients := range h.clients {
		for _, c := range clients {
			close(c.Send)
		}
		delete(h.clients, userID)
	}
}

// Send delivers data to every connection of userID, here and, through
// Redis, on the other instances.
func (h *Hub) Send(userID uuid.UUID, data []byte) {
	h.deliverLocal(userID, data)

	if h.rdb == nil {
		return
	}

	payload, err := json.Marshal(clusterMessage{
		Origin:       h.instanceID,
		TargetUserID: userID,
		Message:      data,
	})
	if err != nil {
		h.logger.Error(hubModule, "failed to encode cluster message", map[string]interface{}{"error": err})
		return
	}
	if err := h.rdb.Publish(context.Background(), clusterChannel, payload).Err(); err != nil {
		h.logger.Warn(hubModule, "failed to relay message to cluster", map[string]interface{}{"error": err})
	}
}

// ClientCount returns the number of local connections held by userID.
func (h *Hub) ClientCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) deliverLocal(userID uuid.UUID, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients[userID] {
		select {
		case client.Send <- data:
		default:
			// A stalled reader loses events rather than blocking the publisher.
			h.logger.Warn(hubModule, "Client Send buffer full, dropping message", map[string]interface{}{"user_id": userID})
		}
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var payload clusterMessage
			if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
				h.logger.Warn(hubModule, "Redis msg parse error", map[string]interface{}{"error": err})
				continue
			}
			if payload.Origin == h.instanceID {
				continue
			}
			h.deliverLocal(payload.TargetUserID, payload.Message)
		}
	}
}
