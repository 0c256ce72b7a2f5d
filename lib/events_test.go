package greeter

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewPublisherWithoutBrokers(t *testing.T) {
	p := NewPublisher(nil, "greeter_events", NewLogger(io.Discard, "info"))
	assert.IsType(t, NopPublisher{}, p)
	assert.NoError(t, p.Publish(context.Background(), "k", "v"))
	assert.NoError(t, p.Close())
}

func TestNewPublisherWithBrokers(t *testing.T) {
	p := NewPublisher([]string{"localhost:9092"}, "greeter_events", NewLogger(io.Discard, "info"))
	kp, ok := p.(*KafkaPublisher)
	if assert.True(t, ok) {
		assert.Equal(t, "greeter_events", kp.writer.Topic)
		assert.True(t, kp.writer.Async)
	}
	assert.NoError(t, p.Close())
}

func TestNewEvents(t *testing.T) {
	greeted := NewGreetedEvent("Hello, World!")
	assert.Equal(t, EventGreeted, greeted.Type)
	assert.Equal(t, "Hello, World!", greeted.Message)
	_, err := uuid.Parse(greeted.Id)
	assert.NoError(t, err)

	counted := NewCountedEvent(3)
	assert.Equal(t, EventCounted, counted.Type)
	assert.Equal(t, int64(3), counted.Count)
	assert.NotEqual(t, greeted.Id, counted.Id)
	assert.False(t, counted.At.IsZero())
}
