// Package live pushes stock and sale updates to connected clients over
// WebSocket, standing in for the change notifications the hosted database
// used to deliver.
package live

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is enforced at the outer handler
	},
}

// Hub fans broadcast payloads out to every connected client.
type Hub struct {
	mu        sync.RWMutex
	clients   map[*websocket.Conn]chan []byte
	broadcast chan []byte
	done      chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]chan []byte),
		broadcast: make(chan []byte, 64),
		done:      make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case data := <-h.broadcast:
			h.mu.RLock()
			for conn, send := range h.clients {
				select {
				case send <- data:
				default:
					log.Printf("Warning: live feed buffer full for %s, dropping update", conn.RemoteAddr())
				}
			}
			h.mu.RUnlock()
		case <-h.done:
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
			}
			h.clients = make(map[*websocket.Conn]chan []byte)
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Broadcast queues one update for every subscriber; full hub buffer drops it.
func (h *Hub) Broadcast(updateType string, payload map[string]any) {
	msg := map[string]any{"type": updateType}
	for k, v := range payload {
		msg[k] = v
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("live: failed to marshal update: %v", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		log.Println("Warning: live feed backlog full, dropping update")
	}
}

// Serve upgrades the request and streams updates until the client goes away.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live: upgrade failed: %v", err)
		return
	}

	send := make(chan []byte, 16)
	h.mu.Lock()
	h.clients[conn] = send
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for data := range send {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}()

	// Drain reads so pings and close frames are processed.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			if ch, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				close(ch)
			}
			h.mu.Unlock()
			return
		}
	}
}
