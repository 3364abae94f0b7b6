package waypoints

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"homeport/internal/logging"
	"homeport/internal/urls"
)

const (
	// dialTimeout bounds the websocket handshake
	dialTimeout = 5 * time.Second

	// reconnectDelay is how long the watcher waits before redialing after a
	// dropped connection
	reconnectDelay = 5 * time.Second
)

// ChangeEvent reports that the store mutated an owner's entry list behind the
// menu's back (another session, an admin command, slot-limit enforcement).
type ChangeEvent struct {
	Type      string `json:"type"`
	OwnerUUID string `json:"owner"`
}

// Watcher subscribes to the store's websocket event feed and surfaces entry
// list changes. The feed is best-effort: if the store does not expose it, or
// the connection drops for good, the watcher goes quiet and the menu simply
// stops receiving push refreshes.
type Watcher struct {
	endpoint string
	token    string
	events   chan ChangeEvent
}

// NewWatcher creates a watcher for the store at baseURL. The websocket
// endpoint is derived from the HTTP base URL.
func NewWatcher(baseURL, token string) (*Watcher, error) {
	endpoint, err := urls.Websocket(baseURL)
	if err != nil {
		return nil, NewNetworkError("invalid store URL", err)
	}

	return &Watcher{
		endpoint: endpoint,
		token:    token,
		events:   make(chan ChangeEvent, 8),
	}, nil
}

// Events returns the channel change events are delivered on. The channel is
// closed when the watcher stops.
func (w *Watcher) Events() <-chan ChangeEvent {
	return w.events
}

// Run dials the feed and pumps events until ctx is cancelled. Dropped
// connections are redialed after a delay; a failed initial dial is retried the
// same way rather than treated as fatal.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.events)

	for {
		if ctx.Err() != nil {
			return
		}
		conn, err := w.dial(ctx)
		if err != nil {
			logging.Warn("event feed unavailable", zap.Error(err))
			if !w.sleep(ctx, reconnectDelay) {
				return
			}
			continue
		}
		w.pump(ctx, conn)
		if !w.sleep(ctx, reconnectDelay) {
			return
		}
	}
}

func (w *Watcher) dial(ctx context.Context) (*websocket.Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: dialTimeout}
	header := make(map[string][]string)
	if w.token != "" {
		header["Authorization"] = []string{"Bearer " + w.token}
	}
	conn, _, err := dialer.DialContext(ctx, w.endpoint, header)
	if err != nil {
		return nil, NewNetworkError("websocket dial failed", err)
	}
	return conn, nil
}

// pump reads events off conn until it fails or ctx is cancelled.
func (w *Watcher) pump(ctx context.Context, conn *websocket.Conn) {
	defer func() { _ = conn.Close() }()

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()
	defer close(done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				logging.Warn("event feed dropped", zap.Error(err))
			}
			return
		}

		var event ChangeEvent
		if err := json.Unmarshal(data, &event); err != nil {
			logging.Debug("unparseable feed event", zap.ByteString("payload", data))
			continue
		}
		if event.Type != "entries_changed" {
			continue
		}

		select {
		case w.events <- event:
		default:
			// A full buffer means a refresh is already overdue; dropping
			// the event loses nothing because refresh re-fetches everything.
		}
	}
}

// sleep waits for d or until ctx is cancelled. Returns false on cancellation.
func (w *Watcher) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
