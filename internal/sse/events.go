// Package sse implements Server-Sent Events for pushing library changes and
// save progress to connected clients.
package sse

import (
	"time"

	"github.com/booknoteapp/booknote-server/internal/storage"
)

// EventType represents the type of SSE Event.
type EventType string

const (
	// EventBookCreated represents a book creation event.
	EventBookCreated EventType = "book.created"
	// EventBookUpdated represents a book update event.
	EventBookUpdated EventType = "book.updated"
	// EventBookDeleted represents a book deletion event.
	EventBookDeleted EventType = "book.deleted"

	// EventChapterCreated represents a chapter creation event.
	EventChapterCreated EventType = "chapter.created"
	// EventChapterUpdated represents a chapter update event.
	EventChapterUpdated EventType = "chapter.updated"
	// EventChapterDeleted represents a chapter deletion event.
	EventChapterDeleted EventType = "chapter.deleted"

	// EventDetailCreated represents a detail note creation event.
	EventDetailCreated EventType = "detail.created"
	// EventDetailUpdated represents a detail note update event.
	EventDetailUpdated EventType = "detail.updated"
	// EventDetailDeleted represents a detail note deletion event.
	EventDetailDeleted EventType = "detail.deleted"

	// EventLibraryCreated represents a new library being created.
	EventLibraryCreated EventType = "library.created"
	// EventLibrarySwitched represents the active library changing.
	EventLibrarySwitched EventType = "library.switched"

	// EventGenreAdded represents a custom genre declaration.
	EventGenreAdded EventType = "genre.added"

	// EventSaveStarted represents a save to the configured backend starting.
	EventSaveStarted EventType = "save.started"
	// EventSaveCompleted represents a successful save.
	EventSaveCompleted EventType = "save.completed"
	// EventSaveFailed represents a failed save.
	EventSaveFailed EventType = "save.failed"

	// EventHeartbeat represents a connection keepalive event.
	EventHeartbeat EventType = "heartbeat"
)

// Event represents an SSE event to be sent to clients.
// The Data field contains the event payload as a JSON object for direct deserialization.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
	Type      EventType `json:"type"`
}

// EntityEventData is the data payload for book, chapter and detail events.
// Entity carries the full record for created/updated events and is nil for
// deletions, where only the ID remains meaningful.
type EntityEventData struct {
	Library string `json:"library"`
	ID      int64  `json:"id"`
	Entity  any    `json:"entity,omitempty"`
}

// LibraryEventData is the data payload for library events.
type LibraryEventData struct {
	Name  string   `json:"name"`
	Names []string `json:"names"`
}

// GenreEventData is the data payload for genre events.
type GenreEventData struct {
	Library string `json:"library"`
	Genre   string `json:"genre"`
}

// SaveEventData is the data payload for save lifecycle events.
type SaveEventData struct {
	Receipt *storage.SaveReceipt `json:"receipt,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// HeartbeatEventData is the data payload for heartbeat events.
type HeartbeatEventData struct {
	ServerTime time.Time `json:"server_time"`
}

// NewEvent creates an event with the current timestamp.
func NewEvent(eventType EventType, data any) Event {
	return Event{
		Timestamp: time.Now(),
		Type:      eventType,
		Data:      data,
	}
}

// NewHeartbeatEvent creates a heartbeat event.
func NewHeartbeatEvent() Event {
	now := time.Now()
	return Event{
		Timestamp: now,
		Type:      EventHeartbeat,
		Data:      HeartbeatEventData{ServerTime: now},
	}
}
