package domain

import (
	"context"
	"time"
)

// GuestStatusConfirmed is the only RSVP status in the current scope; a guest
// either holds a spot or is not on the list at all.
const GuestStatusConfirmed = "confirmed"

// Guest is a person who has reserved a spot at an event. Name is unique per
// event, compared case-insensitively.
type Guest struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	Dietary  string    `json:"dietary,omitempty"`
	Notes    string    `json:"notes,omitempty"`
	RSVPDate time.Time `json:"rsvp_date"`
	Status   string    `json:"status"`
}

// GuestUpdate is a partial guest update; nil fields are left unchanged.
type GuestUpdate struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Dietary *string `json:"dietary,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// RSVPService defines the contract for guest-list mutations. Every mutation
// goes through the event update path, so it bumps the event version.
type RSVPService interface {
	AddGuest(ctx context.Context, eventID string, input *Guest) (*Event, error)
	RemoveGuest(ctx context.Context, eventID, guestID string) (*Event, error)
	UpdateGuest(ctx context.Context, eventID, guestID string, upd *GuestUpdate) (*Event, error)
}
