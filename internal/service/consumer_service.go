// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"notetaking-be/internal/dto"
	"notetaking-be/internal/entity"
	"notetaking-be/internal/pkg/logger"
	"notetaking-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

const activityModule = "note_activity"

type IConsumerService interface {
	// Consume subscribes to the note topic and records every event in the
	// activity log until ctx is cancelled.
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.NoteEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error(activityModule, "failed to unmarshal note event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err,
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	createdAt := payload.OccurredAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	activity := &entity.NoteActivity{
		Id:        uuid.New(),
		NoteId:    payload.NoteId,
		UserId:    payload.UserId,
		Action:    entity.NoteAction(payload.Action),
		Slug:      payload.Slug,
		CreatedAt: createdAt,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NoteActivityRepository().Create(ctx, activity); err != nil {
		cs.logger.Error(activityModule, "failed to record note activity", map[string]interface{}{
			"note_id": payload.NoteId,
			"action":  payload.Action,
			"error":   err,
		})
		if ctx.Err() != nil {
			msg.Ack() // shutting down, nothing will succeed
			return
		}
		msg.Nack()
		return
	}

	cs.logger.Debug(activityModule, "note activity recorded", map[string]interface{}{
		"note_id": payload.NoteId,
		"action":  payload.Action,
	})
	msg.Ack()
}
