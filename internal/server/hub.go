package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"homeport/internal/logging"
	"homeport/internal/waypoints"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Send pings with this period to detect dead subscribers
	pingPeriod = 30 * time.Second

	// Per-subscriber event buffer; a subscriber that falls this far behind
	// is dropped rather than allowed to stall the broadcast
	subscriberBuffer = 16
)

var upgrader = websocket.Upgrader{
	HandshakeTimeout: 10 * time.Second,
	// The feed carries no secrets beyond what the REST API already serves
	// under the same token, so any origin may subscribe.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans change events out to websocket subscribers. Subscribers receive
// JSON-encoded waypoints.ChangeEvent messages; slow subscribers are dropped.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
	closed      bool
}

type subscriber struct {
	conn *websocket.Conn
	send chan waypoints.ChangeEvent
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[*subscriber]struct{})}
}

// Subscribers reports how many feed connections are active.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// EntriesChanged broadcasts an entries_changed event. An empty owner means
// the change is not scoped to one owner (warp mutations) and every menu
// should refresh.
func (h *Hub) EntriesChanged(owner string) {
	event := waypoints.ChangeEvent{Type: "entries_changed", OwnerUUID: owner}

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subscribers {
		select {
		case sub.send <- event:
		default:
			// Behind by a full buffer: cut it loose, the reconnect
			// re-fetches everything anyway.
			delete(h.subscribers, sub)
			close(sub.send)
		}
	}
}

// ServeHTTP upgrades the request to a websocket and streams events until the
// client goes away or the hub shuts down.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("event feed upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	sub := &subscriber{conn: conn, send: make(chan waypoints.ChangeEvent, subscriberBuffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()
		return
	}
	h.subscribers[sub] = struct{}{}
	count := len(h.subscribers)
	h.mu.Unlock()

	logging.Info("event feed subscriber connected",
		zap.String("remote_addr", r.RemoteAddr),
		zap.Int("subscribers", count),
	)

	go h.writeLoop(sub)
	h.readLoop(sub, r.RemoteAddr)
}

// writeLoop pushes events and pings to one subscriber.
func (h *Hub) writeLoop(sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-sub.send:
			if !ok {
				_ = sub.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
					time.Now().Add(writeWait))
				return
			}
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteJSON(event); err != nil {
				h.drop(sub)
				return
			}
		case <-ticker.C:
			if err := sub.conn.WriteControl(websocket.PingMessage, nil,
				time.Now().Add(writeWait)); err != nil {
				h.drop(sub)
				return
			}
		}
	}
}

// readLoop discards inbound messages; the feed is one-way. It exists to
// notice the close handshake and connection loss.
func (h *Hub) readLoop(sub *subscriber, remoteAddr string) {
	defer func() {
		h.drop(sub)
		_ = sub.conn.Close()
		logging.Info("event feed subscriber disconnected",
			zap.String("remote_addr", remoteAddr),
		)
	}()
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// drop removes a subscriber if it is still registered.
func (h *Hub) drop(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[sub]; ok {
		delete(h.subscribers, sub)
		close(sub.send)
	}
}

// Close disconnects every subscriber and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for sub := range h.subscribers {
		delete(h.subscribers, sub)
		close(sub.send)
	}
}
