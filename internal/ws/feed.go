package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/astroguard/backend/internal/nasa"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // origin policy is enforced by the CORS layer
	},
}

// Client is one connected feed subscriber.
type Client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks feed subscribers and fans close-approach refreshes out to
// them. New subscribers immediately receive the latest snapshot.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu     sync.RWMutex
	latest []byte
}

// NewHub creates a feed hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 8),
	}
}

// Run processes registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.clients[client] = true
			h.mu.RLock()
			snapshot := h.latest
			h.mu.RUnlock()
			if snapshot != nil {
				select {
				case client.send <- snapshot:
				default:
				}
			}
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			h.mu.Lock()
			h.latest = message
			h.mu.Unlock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Subscriber too slow; drop it.
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Broadcast queues a feed update for all subscribers.
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		log.Printf("[WS] Broadcast queue full, dropping feed update")
	}
}

// ServeFeed upgrades an HTTP request to a feed subscription.
func (h *Hub) ServeFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade failed: %v", err)
		return
	}

	client := &Client{conn: conn, send: make(chan []byte, 8)}
	h.register <- client

	go client.writePump()
	go client.readPump(h)
}

func (c *Client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the connection to detect disconnects; subscribers
// never send application messages.
func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// feedMessage is the envelope pushed to subscribers.
type feedMessage struct {
	Type string                  `json:"type"`
	Feed *nasa.CloseApproachFeed `json:"feed"`
}

// StartCloseApproachPoller refreshes the close-approach feed on an
// interval and broadcasts each successful refresh.
func StartCloseApproachPoller(ctx context.Context, hub *Hub, client *nasa.Client, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		refresh := func() {
			feed, err := client.CloseApproaches(ctx)
			if err != nil {
				log.Printf("[WS] Close-approach refresh failed: %v", err)
				return
			}
			data, err := json.Marshal(feedMessage{Type: "close_approaches", Feed: feed})
			if err != nil {
				log.Printf("[WS] Failed to marshal feed: %v", err)
				return
			}
			hub.Broadcast(data)
			log.Printf("[WS] Broadcast %d close approaches", len(feed.Approaches))
		}

		refresh()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				refresh()
			}
		}
	}()
}
