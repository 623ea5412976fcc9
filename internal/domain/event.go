package domain

import (
	"context"
	"time"
)

// DefaultDuration is the event length in minutes used when the caller
// does not supply one.
const DefaultDuration = 180

// Host identifies who is running a game night.
type Host struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// EventMetadata tracks bookkeeping for an event record. Version starts at 1
// and is bumped on every successful update.
type EventMetadata struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// Event represents a scheduled game night with a capacity-bounded guest list.
// Guests are kept in RSVP order.
type Event struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Date        time.Time     `json:"date"`
	MaxGuests   int           `json:"max_guests"`
	Duration    int           `json:"duration"` // minutes
	Host        Host          `json:"host"`
	Guests      []Guest       `json:"guests"`
	Metadata    EventMetadata `json:"metadata"`
}

// EventUpdate is a partial update; nil fields are left unchanged.
type EventUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	MaxGuests   *int       `json:"max_guests,omitempty"`
	Duration    *int       `json:"duration,omitempty"`
	Host        *Host      `json:"host,omitempty"`
}

// StorageStats summarizes the persisted collection.
type StorageStats struct {
	TotalEvents    int `json:"total_events"`
	UpcomingEvents int `json:"upcoming_events"`
	PastEvents     int `json:"past_events"`
	TotalGuests    int `json:"total_guests"`
	StorageUsed    int `json:"storage_used"` // bytes of the serialized events blob
}

// EventRepository defines the interface for event storage. The whole
// collection is persisted as one blob, so every mutation is a
// read-modify-write over all events; implementations must serialize
// mutations (single writer at a time).
type EventRepository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*Event, error)
	ReplaceAll(ctx context.Context, events []*Event) error
	Size(ctx context.Context) (int, error)
}

// EventService defines the contract for event lifecycle operations.
type EventService interface {
	CreateEvent(ctx context.Context, input *Event) (*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	UpdateEvent(ctx context.Context, id string, upd *EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, id string) (bool, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	ListEventsByDateRange(ctx context.Context, start, end time.Time) ([]*Event, error)
	Stats(ctx context.Context) (*StorageStats, error)
}
