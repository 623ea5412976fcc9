package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gamenight/internal/dateutil"
	"gamenight/internal/domain"
	"gamenight/internal/validation"
)

type rsvpService struct {
	events domain.EventRepository
	email  domain.EmailService
	logger *slog.Logger
}

// NewRSVPService creates an RSVPService. The email service may be backed by
// a noop mailer; confirmation mail is best-effort either way.
func NewRSVPService(events domain.EventRepository, email domain.EmailService, logger *slog.Logger) domain.RSVPService {
	return &rsvpService{
		events: events,
		email:  email,
		logger: logger,
	}
}

// AddGuest registers a guest on an event. The capacity check runs before the
// duplicate-name check, so a full event reports "full" even to a guest who
// is already on the list.
func (s *rsvpService) AddGuest(ctx context.Context, eventID string, input *domain.Guest) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	input.Name = strings.TrimSpace(input.Name)
	if errs := validation.ValidateGuest(input); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	if len(event.Guests) >= event.MaxGuests {
		return nil, domain.ErrEventFull
	}
	for _, g := range event.Guests {
		if strings.EqualFold(strings.TrimSpace(g.Name), input.Name) {
			return nil, domain.ErrDuplicateGuest
		}
	}

	input.ID = generateID()
	input.RSVPDate = time.Now()
	input.Status = domain.GuestStatusConfirmed
	event.Guests = append(event.Guests, *input)

	if err := s.saveEvent(ctx, event); err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, event, input)
	return event, nil
}

// RemoveGuest drops the matching guest. A guest id that matches nothing is
// not-found; the event is left untouched.
func (s *rsvpService) RemoveGuest(ctx context.Context, eventID, guestID string) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	kept := make([]domain.Guest, 0, len(event.Guests))
	for _, g := range event.Guests {
		if g.ID != guestID {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(event.Guests) {
		return nil, domain.ErrNotFound
	}
	event.Guests = kept

	if err := s.saveEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateGuest merges the partial update onto the matching guest and
// revalidates it, including name uniqueness against the other guests.
func (s *rsvpService) UpdateGuest(ctx context.Context, eventID, guestID string, upd *domain.GuestUpdate) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	idx := -1
	for i, g := range event.Guests {
		if g.ID == guestID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	merged := event.Guests[idx]
	if upd.Name != nil {
		merged.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Email != nil {
		merged.Email = *upd.Email
	}
	if upd.Dietary != nil {
		merged.Dietary = *upd.Dietary
	}
	if upd.Notes != nil {
		merged.Notes = *upd.Notes
	}

	if errs := validation.ValidateGuest(&merged); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	for i, g := range event.Guests {
		if i != idx && strings.EqualFold(strings.TrimSpace(g.Name), merged.Name) {
			return nil, domain.ErrDuplicateGuest
		}
	}

	event.Guests[idx] = merged
	if err := s.saveEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// saveEvent persists a guest-list mutation through the event update path:
// version bump, fresh updatedAt, full-collection write.
func (s *rsvpService) saveEvent(ctx context.Context, event *domain.Event) error {
	event.Metadata.Version++
	event.Metadata.UpdatedAt = time.Now()
	if err := s.events.Update(ctx, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// sendConfirmation emails the guest when they left an address. Failures are
// logged, never surfaced; the RSVP itself already succeeded.
func (s *rsvpService) sendConfirmation(ctx context.Context, event *domain.Event, guest *domain.Guest) {
	if guest.Email == "" {
		return
	}
	data := &domain.RSVPConfirmationEmailData{
		GuestName:    guest.Name,
		GuestEmail:   guest.Email,
		EventTitle:   event.Title,
		HostName:     event.Host.Name,
		WhenText:     dateutil.FormatDate(event.Date, dateutil.FormatDateTime),
		DurationText: dateutil.FormatDuration(event.Duration),
	}
	if err := s.email.SendRSVPConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "rsvp confirmation email failed", "event_id", event.ID, "err", err)
	}
}
