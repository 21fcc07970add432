package mq

import (
	"context"
	"encoding/json"
	"log"

	"pharmadesk/rdx"
)

const channel = "pharmadesk-events"

// Event is one domain notification published on the shared Redis channel.
type Event struct {
	Name     string `json:"name"`
	EntityID string `json:"entity_id,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// Emit publishes an event; failures are logged, never surfaced to the caller.
func Emit(name string, ev Event) {
	ev.Name = name
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}
