package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamenight/internal/domain"
)

type transferService struct {
	events domain.EventRepository
	prefs  domain.PreferenceRepository
}

// NewTransferService creates a TransferService producing and ingesting
// export bundles.
func NewTransferService(events domain.EventRepository, prefs domain.PreferenceRepository) domain.TransferService {
	return &transferService{
		events: events,
		prefs:  prefs,
	}
}

// Export snapshots the three stores into one bundle. Unset singletons are
// simply omitted from the bundle.
func (s *transferService) Export(ctx context.Context) (*domain.ExportBundle, error) {
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	bundle := &domain.ExportBundle{
		Events:     events,
		ExportDate: time.Now(),
	}

	if prefs, err := s.prefs.GetPreferences(ctx); err == nil {
		bundle.UserPreferences = prefs
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get preferences: %w", err)
	}

	if user, err := s.prefs.GetCurrentUser(ctx); err == nil {
		bundle.CurrentUser = user
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get current user: %w", err)
	}

	return bundle, nil
}

// Import overwrites each store whose key is present in the bundle; absent
// keys leave their store untouched (partial import). Each key is written
// independently, so a failure mid-way can leave earlier keys imported.
func (s *transferService) Import(ctx context.Context, bundle *domain.ExportBundle) error {
	if bundle == nil {
		return errors.New("empty import bundle")
	}

	if bundle.Events != nil {
		if err := s.events.ReplaceAll(ctx, bundle.Events); err != nil {
			return fmt.Errorf("import events: %w", err)
		}
	}
	if bundle.UserPreferences != nil {
		if err := s.prefs.SavePreferences(ctx, bundle.UserPreferences); err != nil {
			return fmt.Errorf("import preferences: %w", err)
		}
	}
	if bundle.CurrentUser != nil {
		if err := s.prefs.SetCurrentUser(ctx, bundle.CurrentUser); err != nil {
			return fmt.Errorf("import current user: %w", err)
		}
	}
	return nil
}
