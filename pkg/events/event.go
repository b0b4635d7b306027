package events

import (
	"context"
	"time"
)

// Event type codes. They double as NATS subject suffixes and as keys into
// the notification_types registry.
const (
	WorkflowSaveFailed = "WORKFLOW_SAVE_FAILED"
	WorkflowCompleted  = "WORKFLOW_COMPLETED"
	TemplateDownloaded = "TEMPLATE_DOWNLOADED"
	CommentPosted      = "COMMENT_POSTED"
	SystemBroadcast    = "SYSTEM_BROADCAST"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "WORKFLOW_SAVE_FAILED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Publisher sends events to the bus. *nats.Publisher implements it.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event. Used when the bus is unavailable.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
