package tracer

import (
	"context"
	"testing"

	"notetaking-be/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestInitTracerDisabledIsNoop(t *testing.T) {
	shutdown := InitTracer(config.TracingConfig{Enabled: false})

	assert.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}
