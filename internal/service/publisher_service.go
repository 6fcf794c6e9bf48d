package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (p *publisherService) Publish(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// The request context is not attached: subscribers outlive the request.
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return p.publisher.Publish(p.topicName, msg)
}
