package service

import (
	"context"
	"encoding/json"

	"notetaking-be/internal/dto"
	"notetaking-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

const feedModule = "note_feed"

// NoteEventSink receives encoded events addressed to a single user.
type NoteEventSink interface {
	Send(userID uuid.UUID, data []byte)
}

type IFeedService interface {
	// Consume forwards every note event to its author's live connections
	// until ctx is cancelled.
	Consume(ctx context.Context) error
}

type feedService struct {
	subscriber message.Subscriber
	topicName  string
	sink       NoteEventSink
	logger     logger.ILogger
}

func NewFeedService(subscriber message.Subscriber, topicName string, sink NoteEventSink, log logger.ILogger) IFeedService {
	return &feedService{
		subscriber: subscriber,
		topicName:  topicName,
		sink:       sink,
		logger:     log,
	}
}

func (s *feedService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.forward(msg)
		}
	}()

	return nil
}

func (s *feedService) forward(msg *message.Message) {
	// Delivery is best effort; nothing is gained by redelivering.
	defer msg.Ack()

	var payload dto.NoteEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Warn(feedModule, "failed to unmarshal note event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err,
		})
		return
	}
	if payload.UserId == uuid.Nil {
		return
	}

	data, err := json.Marshal(dto.NoteFeedMessage{Type: "note_event", Data: payload})
	if err != nil {
		s.logger.Error(feedModule, "failed to encode feed message", map[string]interface{}{"error": err})
		return
	}

	s.sink.Send(payload.UserId, data)
}
