package nats

import (
	"testing"
	"time"

	"notetaking-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	evt := events.BaseEvent{Type: "NOTE_CREATED", OccurredAt: time.Now()}
	assert.Equal(t, "events.NOTE_CREATED", Subject(evt))
}

func TestCloseWithoutConnection(t *testing.T) {
	p := &Publisher{}
	assert.NotPanics(t, p.Close)
}
