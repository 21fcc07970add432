package live

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// fake subscriber wired straight into the client map
	send := make(chan []byte, 10)
	conn := &websocket.Conn{}
	hub.mu.Lock()
	hub.clients[conn] = send
	hub.mu.Unlock()

	hub.Broadcast("stock_update", map[string]any{"productId": "p1", "stock": 7})

	select {
	case data := <-send:
		var msg map[string]any
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if msg["type"] != "stock_update" {
			t.Errorf("expected type stock_update, got %v", msg["type"])
		}
		if msg["productId"] != "p1" {
			t.Errorf("expected productId p1, got %v", msg["productId"])
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for update")
	}
}
