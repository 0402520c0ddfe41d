package realtime_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-tube/domain/model"
	"nexus-tube/infrastructure/realtime"
)

func hubServer(hub *realtime.Hub) *httptest.Server {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	withUser := func(c *gin.Context) { c.Set("user_id", "u1") }
	r.GET("/events", withUser, hub.Serve)
	r.GET("/ws", withUser, hub.ServeWS)
	return httptest.NewServer(r)
}

func waitForSubscribers(t *testing.T, hub *realtime.Hub, n int) {
	require.Eventually(t, func() bool { return hub.Subscribers() == n }, time.Second, 5*time.Millisecond)
}

func TestHub_BroadcastIsNonBlocking(t *testing.T) {
	hub := realtime.NewStoreHub(nil)
	ch := hub.Subscribe("u1")

	for i := 0; i < 100; i++ {
		hub.Broadcast(model.StoreEvent{Kind: model.EventLikeToggled})
	}

	assert.Len(t, ch, cap(ch))
	hub.Unsubscribe("u1", ch)
	hub.Unsubscribe("u1", ch)
	assert.Zero(t, hub.Subscribers())
}

func TestHub_ServeSSE(t *testing.T) {
	hub := realtime.NewStoreHub(nil)
	srv := hubServer(hub)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	waitForSubscribers(t, hub, 1)
	hub.Broadcast(model.StoreEvent{Kind: model.EventVideoAdded, UserID: "u1", SubjectID: "v1", Message: "Video uploaded"})

	reader := bufio.NewReader(resp.Body)
	var lines []string
	for len(lines) < 2 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, ":") {
			lines = append(lines, line)
		}
	}
	assert.Equal(t, "event: video_added", lines[0])
	assert.Contains(t, lines[1], `"subjectId":"v1"`)

	cancel()
	waitForSubscribers(t, hub, 0)
}

func TestHub_ServeWS(t *testing.T) {
	hub := realtime.NewStoreHub([]string{"http://localhost:5173"})
	srv := hubServer(hub)
	defer srv.Close()

	header := http.Header{"Origin": []string{"http://localhost:5173"}}
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", header)
	require.NoError(t, err)

	waitForSubscribers(t, hub, 1)
	hub.Broadcast(model.StoreEvent{Kind: model.EventMessageSent, UserID: "u1", SubjectID: "msg_1"})

	var evt model.StoreEvent
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, conn.ReadJSON(&evt))
	assert.Equal(t, model.EventMessageSent, evt.Kind)
	assert.Equal(t, "msg_1", evt.SubjectID)

	require.NoError(t, conn.Close())
	waitForSubscribers(t, hub, 0)
}

func TestHub_ServeWSRejectsForeignOrigin(t *testing.T) {
	hub := realtime.NewStoreHub([]string{"http://localhost:5173"})
	srv := hubServer(hub)
	defer srv.Close()

	header := http.Header{"Origin": []string{"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", header)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
