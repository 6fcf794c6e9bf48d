package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"notetaking-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	StreamName    = "EVENTS"
	SubjectPrefix = "events."
)

// Publisher handles sending events to the NATS bus.
type Publisher struct {
	nc *nats.Conn
	js jetstream.JetStream
}

// NewPublisher creates a new NATS publisher.
func NewPublisher(url string) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      StreamName,
		Subjects:  []string{SubjectPrefix + ">"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
	})
	if err != nil {
		// Stream may already exist under different settings, or NATS may still be starting.
		log.Printf("Warn: Failed to ensure stream '%s': %v", StreamName, err)
	}

	return &Publisher{nc: nc, js: js}, nil
}

// Subject returns the subject an event is published on.
func Subject(event events.Event) string {
	return SubjectPrefix + event.EventType()
}

// Publish sends an event to NATS.
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	data, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	subject := Subject(event)

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish event to subject %s: %w", subject, err)
	}

	return nil
}

// Close closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
