package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"grantflow-be/internal/model"
	"grantflow-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func attach(t *testing.T, hub *Hub, userID uuid.UUID) *Client {
	t.Helper()
	client := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 4)}
	hub.register <- client
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		_, ok := hub.clients[userID][client]
		return ok
	}, time.Second, 5*time.Millisecond)
	return client
}

func receive(t *testing.T, c *Client) model.Notification {
	t.Helper()
	select {
	case raw := <-c.Send:
		var envelope struct {
			Type string             `json:"type"`
			Data model.Notification `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &envelope))
		assert.Equal(t, "notification", envelope.Type)
		return envelope.Data
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
		return model.Notification{}
	}
}

func TestSendReachesOnlyTargetUser(t *testing.T) {
	hub := startHub(t)
	alice, bob := uuid.New(), uuid.New()
	a := attach(t, hub, alice)
	b := attach(t, hub, bob)

	hub.Send(alice, model.Notification{Title: "Save failed"})

	assert.Equal(t, "Save failed", receive(t, a).Title)
	assert.Empty(t, b.Send)
}

func TestBroadcastReachesEveryone(t *testing.T) {
	hub := startHub(t)
	a := attach(t, hub, uuid.New())
	b := attach(t, hub, uuid.New())

	hub.Broadcast(model.Notification{Title: "Maintenance"})

	assert.Equal(t, "Maintenance", receive(t, a).Title)
	assert.Equal(t, "Maintenance", receive(t, b).Title)
}

func TestUnregisterClosesSend(t *testing.T) {
	hub := startHub(t)
	userID := uuid.New()
	c := attach(t, hub, userID)

	hub.unregister <- c

	require.Eventually(t, func() bool { return hub.ConnectedUsers() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-c.Send
	assert.False(t, open)
}
