package realtime

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gatherle/gatherle-backend/internal/logger"
)

func recvMessage(t *testing.T, ch <-chan SSEMessage, timeout time.Duration) SSEMessage {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for SSE message")
	}
	return SSEMessage{}
}

func TestSSEHubBroadcastOrderingAndReconnect(t *testing.T) {
	hub := NewSSEHub(logger.NewNop())
	userID := uuid.New()
	channel := UserChannel(userID)

	clientA := hub.NewSSEClient(userID)
	hub.AddChannel(clientA, channel)

	first := SSEMessage{Channel: channel, Event: SSEEventFollowRequested, Data: map[string]any{"seq": 1}}
	second := SSEMessage{Channel: channel, Event: SSEEventFeedRefreshed, Data: map[string]any{"seq": 2}}
	hub.Broadcast(first)
	hub.Broadcast(second)

	gotFirst := recvMessage(t, clientA.Outbound, time.Second)
	gotSecond := recvMessage(t, clientA.Outbound, time.Second)
	if gotFirst.Event != SSEEventFollowRequested {
		t.Fatalf("first event: want=%s got=%s", SSEEventFollowRequested, gotFirst.Event)
	}
	if gotSecond.Event != SSEEventFeedRefreshed {
		t.Fatalf("second event: want=%s got=%s", SSEEventFeedRefreshed, gotSecond.Event)
	}

	hub.CloseClient(clientA)
	select {
	case _, ok := <-clientA.Outbound:
		if ok {
			t.Fatalf("clientA outbound should be closed after disconnect")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timed out waiting for clientA channel close")
	}

	clientB := hub.NewSSEClient(userID)
	hub.AddChannel(clientB, channel)
	reconnect := SSEMessage{Channel: channel, Event: SSEEventFeedRefreshed, Data: map[string]any{"seq": 3}}
	hub.Broadcast(reconnect)
	gotReconnect := recvMessage(t, clientB.Outbound, time.Second)
	if gotReconnect.Event != SSEEventFeedRefreshed {
		t.Fatalf("reconnect event: want=%s got=%s", SSEEventFeedRefreshed, gotReconnect.Event)
	}
}

func TestSSEHubChannelIsolation(t *testing.T) {
	hub := NewSSEHub(logger.NewNop())

	subscribed := hub.NewSSEClient(uuid.New())
	other := hub.NewSSEClient(uuid.New())
	hub.AddChannel(subscribed, UserChannel(subscribed.UserID))
	hub.AddChannel(other, UserChannel(other.UserID))

	hub.Broadcast(SSEMessage{Channel: UserChannel(subscribed.UserID), Event: SSEEventFeedRefreshed})

	recvMessage(t, subscribed.Outbound, time.Second)
	select {
	case msg := <-other.Outbound:
		t.Fatalf("unsubscribed client received %v", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSSEHubDropsWhenOutboundFull(t *testing.T) {
	hub := NewSSEHub(logger.NewNop())
	client := hub.NewSSEClient(uuid.New())
	channel := UserChannel(client.UserID)
	hub.AddChannel(client, channel)

	// Outbound holds 10 messages; the extras drop instead of blocking.
	for i := 0; i < 25; i++ {
		hub.Broadcast(SSEMessage{Channel: channel, Event: SSEEventFeedRefreshed, Data: map[string]any{"seq": i}})
	}
	if got := len(client.Outbound); got != 10 {
		t.Fatalf("buffered messages: want=10 got=%d", got)
	}
}
