package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"grantflow-be/internal/entity"
	"grantflow-be/internal/model"
	"grantflow-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type recordingDelivery struct {
	mu        sync.Mutex
	sent      map[uuid.UUID][]model.Notification
	broadcast []model.Notification
}

func newRecordingDelivery() *recordingDelivery {
	return &recordingDelivery{sent: make(map[uuid.UUID][]model.Notification)}
}

func (d *recordingDelivery) Send(userID uuid.UUID, n model.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent[userID] = append(d.sent[userID], n)
}

func (d *recordingDelivery) Broadcast(n model.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.broadcast = append(d.broadcast, n)
}

type recordingMailer struct {
	to, title, message string
	calls              int
}

func (m *recordingMailer) SendNotification(to, title, message string) error {
	m.calls++
	m.to, m.title, m.message = to, title, message
	return nil
}

func newNotificationFixture() (*NotificationService, *fakeDB, *recordingDelivery, *recordingMailer) {
	db := newFakeDB()
	db.notifTypes[events.WorkflowSaveFailed] = &model.NotificationType{
		Code:        events.WorkflowSaveFailed,
		DisplayName: "Progress not saved",
		Template:    "We could not save your checklist: {reason}",
		TargetType:  model.TargetSelf,
		Channels:    datatypes.JSONSlice[string]{"web"},
		IsActive:    true,
	}
	db.notifTypes[events.WorkflowCompleted] = &model.NotificationType{
		Code:        events.WorkflowCompleted,
		DisplayName: "Checklist complete",
		Template:    "You finished all {total_steps} steps.",
		TargetType:  model.TargetSelf,
		Channels:    datatypes.JSONSlice[string]{"web", "email"},
		IsActive:    true,
	}
	db.notifTypes[events.SystemBroadcast] = &model.NotificationType{
		Code:        events.SystemBroadcast,
		DisplayName: "Announcement",
		Template:    "{message}",
		TargetType:  model.TargetBroadcast,
		IsActive:    true,
	}
	db.notifTypes[events.CommentPosted] = &model.NotificationType{
		Code:       events.CommentPosted,
		Template:   "ignored",
		TargetType: model.TargetSelf,
		IsActive:   false,
	}

	delivery := newRecordingDelivery()
	mail := &recordingMailer{}
	svc := NewNotificationService(fakeFactory{db: db}, nil, delivery, mail, nopLogger())
	return svc, db, delivery, mail
}

func TestNotificationService_SelfEventIsStoredAndPushed(t *testing.T) {
	svc, db, delivery, mail := newNotificationFixture()
	userID := uuid.New()

	err := svc.handleEvent(context.Background(), events.New(events.WorkflowSaveFailed, map[string]interface{}{
		"user_id": userID.String(),
		"reason":  "database unavailable",
	}))
	require.NoError(t, err)

	require.Len(t, db.notifications, 1)
	stored := db.notifications[0]
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, "Progress not saved", stored.Title)
	assert.Equal(t, "We could not save your checklist: database unavailable", stored.Message)
	assert.Len(t, delivery.sent[userID], 1)
	assert.Zero(t, mail.calls)
}

func TestNotificationService_EmailChannelUsesProfileAddress(t *testing.T) {
	svc, db, _, mail := newNotificationFixture()
	userID := uuid.New()
	db.profiles[userID] = &entity.UserProfile{UserId: userID, Email: "pi@example.edu"}

	err := svc.handleEvent(context.Background(), events.New(events.WorkflowCompleted, map[string]interface{}{
		"user_id":     userID.String(),
		"total_steps": 12,
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, mail.calls)
	assert.Equal(t, "pi@example.edu", mail.to)
	assert.Equal(t, "You finished all 12 steps.", mail.message)
}

func TestNotificationService_BroadcastIsPushOnly(t *testing.T) {
	svc, db, delivery, _ := newNotificationFixture()

	err := svc.handleEvent(context.Background(), events.New(events.SystemBroadcast, map[string]interface{}{
		"title":   "Maintenance tonight",
		"message": "The library is read-only from 22:00.",
	}))
	require.NoError(t, err)

	assert.Empty(t, db.notifications)
	require.Len(t, delivery.broadcast, 1)
	assert.Equal(t, "Maintenance tonight", delivery.broadcast[0].Title)
	assert.Equal(t, "The library is read-only from 22:00.", delivery.broadcast[0].Message)
}

func TestNotificationService_IgnoresInactiveAndUnaddressedEvents(t *testing.T) {
	svc, db, delivery, _ := newNotificationFixture()
	ctx := context.Background()

	require.NoError(t, svc.handleEvent(ctx, events.New(events.CommentPosted, map[string]interface{}{"user_id": uuid.NewString()})))
	require.NoError(t, svc.handleEvent(ctx, events.New("UNKNOWN_EVENT", nil)))
	require.NoError(t, svc.handleEvent(ctx, events.New(events.WorkflowSaveFailed, map[string]interface{}{"reason": "x"})))

	assert.Empty(t, db.notifications)
	assert.Empty(t, delivery.sent)
}

func TestBuildNotification_ActionURL(t *testing.T) {
	itemID := uuid.New()
	config := &model.NotificationType{Code: events.TemplateDownloaded, DisplayName: "Download", Template: "{title} downloaded", TargetType: model.TargetSelf}

	n := buildNotification(uuid.New(), config, events.New(events.TemplateDownloaded, map[string]interface{}{
		"title":       "Budget sheet",
		"entity_type": "template",
		"entity_id":   itemID.String(),
	}))

	assert.Equal(t, "Download", n.Title)
	assert.Equal(t, "Budget sheet downloaded", n.Message)
	require.NotNil(t, n.EntityID)
	assert.Equal(t, itemID, *n.EntityID)

	var meta map[string]interface{}
	require.NoError(t, json.Unmarshal(n.Metadata, &meta))
	assert.Equal(t, "/templates/"+itemID.String(), meta["action_url"])
}

func TestNotificationService_MarkAsReadMapsNotFound(t *testing.T) {
	svc, _, _, _ := newNotificationFixture()

	err := svc.MarkAsRead(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
