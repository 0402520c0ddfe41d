package realtime

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"nexus-tube/domain/model"
	"nexus-tube/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub fans store events out to open SSE and WebSocket streams. There is a
// single store session, so every stream sees every event; subscribers are
// still grouped by the user that opened them.
type Hub struct {
	mu       sync.RWMutex
	users    map[string]map[chan model.StoreEvent]struct{}
	upgrader websocket.Upgrader
}

func NewStoreHub(allowedOrigins []string) *Hub {
	return &Hub{
		users: make(map[string]map[chan model.StoreEvent]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
	}
}

// Serve streams events as SSE to the user set by the session guard
func (h *Hub) Serve(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.Status(http.StatusUnauthorized)
		return
	}
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ch := h.Subscribe(userID)
	defer h.Unsubscribe(userID, ch)

	_, _ = c.Writer.Write([]byte(":ok\n\n"))
	c.Writer.Flush()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case evt, ok := <-ch:
			if !ok {
				return
			}
			data, _ := json.Marshal(evt)
			_, _ = fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", evt.Kind, data)
			c.Writer.Flush()
		}
	}
}

// ServeWS upgrades the request and writes events as JSON frames until the
// client goes away.
func (h *Hub) ServeWS(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.Status(http.StatusUnauthorized)
		return
	}
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	ch := h.Subscribe(userID)
	defer h.Unsubscribe(userID, ch)

	// the client never sends anything useful; reading detects the close
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case evt, ok := <-ch:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteJSON(evt); err != nil {
				return
			}
		}
	}
}

func (h *Hub) Subscribe(userID string) chan model.StoreEvent {
	ch := make(chan model.StoreEvent, 16)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.users[userID] == nil {
		h.users[userID] = make(map[chan model.StoreEvent]struct{})
	}
	h.users[userID][ch] = struct{}{}
	return ch
}

func (h *Hub) Unsubscribe(userID string, ch chan model.StoreEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs := h.users[userID]; subs != nil {
		if _, ok := subs[ch]; !ok {
			return
		}
		delete(subs, ch)
		close(ch)
		if len(subs) == 0 {
			delete(h.users, userID)
		}
	}
}

// Broadcast delivers evt to every subscriber without blocking. Slow streams
// miss events rather than stall the store.
func (h *Hub) Broadcast(evt model.StoreEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, subs := range h.users {
		for ch := range subs {
			select {
			case ch <- evt:
			default:
			}
		}
	}
}

// Subscribers counts open streams
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, subs := range h.users {
		n += len(subs)
	}
	return n
}

func checkOrigin(origins []string) func(r *http.Request) bool {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(strings.ToLower(o)); o != "" {
			allowed[o] = struct{}{}
		}
	}
	return func(r *http.Request) bool {
		origin := strings.TrimSpace(strings.ToLower(r.Header.Get("Origin")))
		if origin == "" {
			// non-browser clients
			return true
		}
		if _, ok := allowed[origin]; ok {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			return false
		}
		return strings.EqualFold(u.Host, r.Host)
	}
}
