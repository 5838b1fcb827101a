// Package feed provides an in-process hub for suggestion lifecycle events.
// Subscribers (websocket clients, the MQTT bridge) receive events on
// buffered channels; publishing never blocks, slow subscribers drop events.
package feed

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PancyStudios/PancySuggestGo/pkg/logger"
)

// Event types emitted by the command and event handlers.
const (
	EventSubmitted = "submitted"
	EventApproved  = "approved"
	EventDenied    = "denied"
)

// Event describes one suggestion lifecycle transition.
type Event struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	GuildID      string    `json:"guild_id"`
	SuggestionID int64     `json:"suggestion_id"`
	AuthorID     string    `json:"author_id"`
	Timestamp    time.Time `json:"timestamp"`
}

// Hub fans events out to subscribers.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]chan Event
}

var (
	hub     *Hub
	hubOnce sync.Once
)

// Init initializes the global hub.
func Init() *Hub {
	hubOnce.Do(func() {
		hub = NewHub()
	})
	return hub
}

// Get returns the global hub.
func Get() *Hub {
	hubOnce.Do(func() {
		hub = NewHub()
	})
	return hub
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]chan Event)}
}

// Subscribe returns a buffered event channel and a cancel function that
// removes the subscription and closes the channel.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	id := uuid.New().String()
	ch := make(chan Event, 16)

	h.mu.Lock()
	h.subs[id] = ch
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish builds an Event and fans it out. Non-blocking: a subscriber with
// a full buffer misses the event.
func (h *Hub) Publish(eventType, guildID string, suggestionID int64, authorID string) Event {
	ev := Event{
		ID:           uuid.New().String(),
		Type:         eventType,
		GuildID:      guildID,
		SuggestionID: suggestionID,
		AuthorID:     authorID,
		Timestamp:    time.Now().UTC(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			logger.Debug("Suscriptor lento, evento descartado", "Feed")
		}
	}
	return ev
}

// Subscribers returns the current subscriber count.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
