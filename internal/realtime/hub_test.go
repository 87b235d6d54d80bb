package realtime_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rajmahal-backend/internal/realtime"
)

func TestBroadcastReachesConnectedClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := realtime.NewHub()

	router := gin.New()
	router.GET("/ws", hub.Handle)
	srv := httptest.NewServer(router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Give the hub a moment to register the connection.
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast("order_created", map[string]string{"sno": "101"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var event realtime.Event
	require.NoError(t, json.Unmarshal(msg, &event))
	assert.Equal(t, "order_created", event.Event)
}

func TestBroadcastWithoutClientsIsSafe(t *testing.T) {
	hub := realtime.NewHub()
	hub.Broadcast("order_deleted", map[string]string{"sno": "101"})
}
