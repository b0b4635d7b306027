package service

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"grantflow-be/internal/dto"
	"grantflow-be/internal/pkg/logger"
	"grantflow-be/pkg/events"
	"grantflow-be/pkg/workflow"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
	// Drain blocks until at least queued() commands have been handled or
	// ctx ends.
	Drain(ctx context.Context, queued func() uint64) error
	// Wait blocks until the consume loop has exited.
	Wait()
}

const drainPollInterval = 10 * time.Millisecond

// workflowSaveConsumer applies queued progress snapshots one at a time. Each
// command carries a sequence number; a command older than one already
// applied for the same user is dropped, so the stored row always ends up at
// the latest toggle.
type workflowSaveConsumer struct {
	subscriber message.Subscriber
	topicName  string
	tracker    *workflow.Tracker
	events     events.Publisher
	logger     logger.ILogger

	applied map[uuid.UUID]uint64
	handled atomic.Uint64
	done    chan struct{}
	once    sync.Once
}

func NewWorkflowSaveConsumer(
	subscriber message.Subscriber,
	topicName string,
	tracker *workflow.Tracker,
	eventPublisher events.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &workflowSaveConsumer{
		subscriber: subscriber,
		topicName:  topicName,
		tracker:    tracker,
		events:     eventPublisher,
		logger:     log,
		applied:    make(map[uuid.UUID]uint64),
		done:       make(chan struct{}),
	}
}

func (c *workflowSaveConsumer) Consume(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, c.topicName)
	if err != nil {
		return err
	}

	go func() {
		defer c.once.Do(func() { close(c.done) })
		for msg := range messages {
			c.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (c *workflowSaveConsumer) Drain(ctx context.Context, queued func() uint64) error {
	ticker := time.NewTicker(drainPollInterval)
	defer ticker.Stop()

	for c.handled.Load() < queued() {
		select {
		case <-ctx.Done():
			c.logger.Warn("WorkflowSaveConsumer", "Stopped draining with saves still queued", map[string]interface{}{
				"handled": c.handled.Load(),
				"queued":  queued(),
			})
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

func (c *workflowSaveConsumer) Wait() {
	<-c.done
}

func (c *workflowSaveConsumer) processMessage(ctx context.Context, msg *message.Message) {
	// Saves are never retried; every message is acked.
	defer msg.Ack()
	defer c.handled.Add(1)

	var cmd dto.WorkflowSaveCommand
	if err := json.Unmarshal(msg.Payload, &cmd); err != nil {
		c.logger.Error("WorkflowSaveConsumer", "Failed to unmarshal save command", map[string]interface{}{"error": err})
		return
	}

	if last, ok := c.applied[cmd.UserId]; ok && cmd.Sequence <= last {
		c.logger.Debug("WorkflowSaveConsumer", "Skipping superseded save", map[string]interface{}{
			"user_id":  cmd.UserId,
			"sequence": cmd.Sequence,
			"applied":  last,
		})
		return
	}

	state := workflow.Merge(c.tracker.Catalog().ListSteps(), cmd.Progress)
	if err := c.tracker.Save(ctx, cmd.UserId, state); err != nil {
		c.logger.Error("WorkflowSaveConsumer", "Failed to save workflow progress", map[string]interface{}{
			"user_id": cmd.UserId,
			"error":   err,
		})
		evt := events.New(events.WorkflowSaveFailed, map[string]interface{}{
			"user_id": cmd.UserId.String(),
			"reason":  err.Error(),
		})
		if pubErr := c.events.Publish(ctx, evt); pubErr != nil {
			c.logger.Warn("WorkflowSaveConsumer", "Failed to publish save failure", map[string]interface{}{"error": pubErr})
		}
		return
	}

	c.applied[cmd.UserId] = cmd.Sequence
	c.logger.Debug("WorkflowSaveConsumer", "Workflow progress saved", map[string]interface{}{
		"user_id":  cmd.UserId,
		"sequence": cmd.Sequence,
	})
}
