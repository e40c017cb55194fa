package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeFeed))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubDeliversBroadcastToSubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)

	conn := dialHub(t, hub)

	hub.Broadcast([]byte(`{"type":"close_approaches"}`))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(msg) != `{"type":"close_approaches"}` {
		t.Errorf("message = %s", msg)
	}
}

func TestHubSendsLatestSnapshotToNewSubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)

	hub.Broadcast([]byte(`{"seq":1}`))

	// Wait for the hub to process the broadcast before subscribing.
	deadline := time.Now().Add(2 * time.Second)
	for {
		hub.mu.RLock()
		ready := hub.latest != nil
		hub.mu.RUnlock()
		if ready {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("hub never recorded the broadcast")
		}
		time.Sleep(10 * time.Millisecond)
	}

	conn := dialHub(t, hub)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(msg) != `{"seq":1}` {
		t.Errorf("snapshot = %s", msg)
	}
}
