package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"gamenight/internal/domain"
)

type eventRepository struct {
	store  *KVStore
	logger *slog.Logger
}

// NewEventRepository returns an EventRepository persisting the whole event
// collection as one JSON blob under a fixed key.
func NewEventRepository(store *KVStore, logger *slog.Logger) domain.EventRepository {
	return &eventRepository{
		store:  store,
		logger: logger,
	}
}

// loadAll reads the collection. An absent key reads as an empty collection,
// and so does a corrupt blob: the parse failure is logged, never surfaced,
// so a damaged store degrades to a fresh one instead of wedging every read.
func (r *eventRepository) loadAll(ctx context.Context) ([]*domain.Event, error) {
	raw, err := r.store.get(ctx, keyEvents)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []*domain.Event{}, nil
		}
		return nil, fmt.Errorf("read events blob: %w", err)
	}
	var events []*domain.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		r.logger.WarnContext(ctx, "events blob is corrupt, treating as empty", "err", err)
		return []*domain.Event{}, nil
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (r *eventRepository) saveAll(ctx context.Context, events []*domain.Event) error {
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("marshal events: %w", err)
	}
	if err := r.store.set(ctx, keyEvents, raw); err != nil {
		return fmt.Errorf("write events blob: %w", err)
	}
	return nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	events, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	events = append(events, e)
	return r.saveAll(ctx, events)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	events, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	events, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	for i, existing := range events {
		if existing.ID == e.ID {
			events[i] = e
			return r.saveAll(ctx, events)
		}
	}
	return domain.ErrNotFound
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	events, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(events) {
		return domain.ErrNotFound
	}
	return r.saveAll(ctx, kept)
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	return r.loadAll(ctx)
}

func (r *eventRepository) ReplaceAll(ctx context.Context, events []*domain.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if events == nil {
		events = []*domain.Event{}
	}
	return r.saveAll(ctx, events)
}

// Size returns the byte length of the serialized events blob, 0 when absent.
func (r *eventRepository) Size(ctx context.Context) (int, error) {
	raw, err := r.store.get(ctx, keyEvents)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("read events blob: %w", err)
	}
	return len(raw), nil
}
