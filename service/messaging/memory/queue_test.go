package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/talentgrid/allocator/runtime/allocation"
	"github.com/talentgrid/allocator/service/messaging"
)

func TestQueue(t *testing.T) {
	config := DefaultConfig()
	config.RetryDelay = 10 * time.Millisecond
	queue := NewQueue[messaging.AssignmentEvent](config)

	ctx := context.Background()
	event := messaging.AssignmentEvent{
		Topic:      messaging.TopicAssignmentCommitted,
		Assignment: &allocation.Assignment{ID: "a1", TaskID: "t1", EmployeeID: "e1"},
		EmittedAt:  time.Now(),
	}

	err := queue.Publish(ctx, &event)
	assert.NoError(t, err)
	assert.Equal(t, 1, queue.Size())

	message, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, message)
	assert.Equal(t, 0, queue.Size())

	payload := message.T()
	assert.Equal(t, messaging.TopicAssignmentCommitted, payload.Topic)
	assert.Equal(t, "t1", payload.Assignment.TaskID)

	assert.NoError(t, message.Ack())
	// double ack is an error
	assert.Error(t, message.Ack())
}

func TestQueueRetriesToDeadLetter(t *testing.T) {
	config := DefaultConfig()
	config.MaxRetries = 1
	config.RetryDelay = 5 * time.Millisecond
	queue := NewQueue[messaging.AssignmentEvent](config)

	ctx := context.Background()
	event := messaging.AssignmentEvent{Topic: messaging.TopicAssignmentFailed}
	assert.NoError(t, queue.Publish(ctx, &event))

	message, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.NoError(t, message.Nack(nil))

	time.Sleep(20 * time.Millisecond)

	message, err = queue.Consume(ctx)
	assert.NoError(t, err)
	assert.NoError(t, message.Nack(nil))

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, queue.Size())
	assert.Equal(t, 1, queue.DLQSize())
}

func TestQueueContextCancellation(t *testing.T) {
	queue := NewQueue[messaging.AssignmentEvent](DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	event := messaging.AssignmentEvent{}
	assert.Error(t, queue.Publish(ctx, &event))

	ctxWithTimeout, cancelTimeout := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancelTimeout()
	_, err := queue.Consume(ctxWithTimeout)
	assert.Error(t, err)
}
