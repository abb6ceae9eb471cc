package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/akksi/picky/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestChangesWSReceivesOwnerEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := services.NewRealtimeHub()
	ctrl := NewRealtimeController(hub)

	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		c.Set("userID", uint(7))
		ctrl.ChangesWS(c)
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// registration races the dial returning; give the handler a beat
	time.Sleep(50 * time.Millisecond)

	hub.BroadcastChange(7, "rating.saved", map[string]any{"id": 1})
	hub.BroadcastChange(8, "rating.saved", map[string]any{"id": 2}) // someone else's

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var event struct {
		Kind string         `json:"kind"`
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(msg, &event); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if event.Kind != "rating.saved" {
		t.Fatalf("expected rating.saved, got %q", event.Kind)
	}
	if event.Data["id"] != float64(1) {
		t.Fatalf("received another user's event: %+v", event)
	}
}
