package domain

import (
	"context"
	"time"
)

// SharedEvent is the read-only view carried by a share link. It holds enough
// of the event's fields to render a preview without access to the owner's
// collection; the guest list itself is not shared, only its size.
type SharedEvent struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Duration    int       `json:"duration"`
	MaxGuests   int       `json:"max_guests"`
	Host        Host      `json:"host"`
	GuestCount  int       `json:"guest_count"`
}

// ShareService mints and resolves share links. Importing a shared event
// copies it into the local collection under a fresh identity with an empty
// guest list.
type ShareService interface {
	ShareLink(ctx context.Context, eventID string) (string, error)
	Resolve(token string) (*SharedEvent, error)
	ImportShared(ctx context.Context, token string) (*Event, error)
}

// ExportBundle is the export/import file format. On import, only the keys
// present in the bundle are overwritten.
type ExportBundle struct {
	Events          []*Event         `json:"events,omitempty"`
	UserPreferences *UserPreferences `json:"user_preferences,omitempty"`
	CurrentUser     *CurrentUser     `json:"current_user,omitempty"`
	ExportDate      time.Time        `json:"export_date"`
}

// TransferService produces and ingests export bundles.
type TransferService interface {
	Export(ctx context.Context) (*ExportBundle, error)
	Import(ctx context.Context, bundle *ExportBundle) error
}
