package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"context"

	"gamenight/internal/domain"
	"gamenight/internal/validation"
)

type eventService struct {
	repo domain.EventRepository
}

// NewEventService creates an EventService over the given repository.
func NewEventService(repo domain.EventRepository) domain.EventService {
	return &eventService{repo: repo}
}

// CreateEvent validates the input, assigns identity and metadata, and
// persists it. On validation failure nothing is written.
func (s *eventService) CreateEvent(ctx context.Context, input *domain.Event) (*domain.Event, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Host.Name = strings.TrimSpace(input.Host.Name)
	if errs := validation.ValidateEvent(input); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	if input.Duration == 0 {
		input.Duration = domain.DefaultDuration
	}

	now := time.Now()
	input.ID = generateID()
	input.Guests = []domain.Guest{}
	input.Metadata = domain.EventMetadata{
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}

	if err := s.repo.Create(ctx, input); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return input, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// UpdateEvent merges the partial update over the stored record, revalidates
// the merged result, and persists it with a bumped version. The version is
// read from the stored copy, not compared on write; the repository mutex is
// what keeps two updaters from interleaving.
func (s *eventService) UpdateEvent(ctx context.Context, id string, upd *domain.EventUpdate) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	merged := *event
	if upd.Title != nil {
		merged.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		merged.Description = *upd.Description
	}
	if upd.Date != nil {
		merged.Date = *upd.Date
	}
	if upd.MaxGuests != nil {
		merged.MaxGuests = *upd.MaxGuests
	}
	if upd.Duration != nil {
		merged.Duration = *upd.Duration
	}
	if upd.Host != nil {
		merged.Host = *upd.Host
	}

	if errs := validation.ValidateEvent(&merged); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	merged.Metadata.Version++
	merged.Metadata.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, &merged); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return &merged, nil
}

// DeleteEvent removes the event and reports whether anything matched.
func (s *eventService) DeleteEvent(ctx context.Context, id string) (bool, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("delete event: %w", err)
	}
	return true, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// ListEventsByDateRange filters by event date, bounds inclusive.
func (s *eventService) ListEventsByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Event, error) {
	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	filtered := make([]*domain.Event, 0)
	for _, e := range events {
		if !e.Date.Before(start) && !e.Date.After(end) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (s *eventService) Stats(ctx context.Context) (*domain.StorageStats, error) {
	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	size, err := s.repo.Size(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage size: %w", err)
	}

	stats := &domain.StorageStats{
		TotalEvents: len(events),
		StorageUsed: size,
	}
	now := time.Now()
	for _, e := range events {
		if e.Date.After(now) {
			stats.UpcomingEvents++
		} else {
			stats.PastEvents++
		}
		stats.TotalGuests += len(e.Guests)
	}
	return stats, nil
}
