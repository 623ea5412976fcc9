package services

import (
	"context"
	"errors"
	"fmt"

	"gamenight/internal/domain"
)

type preferenceService struct {
	repo domain.PreferenceRepository
}

// NewPreferenceService creates a PreferenceService over the given repository.
func NewPreferenceService(repo domain.PreferenceRepository) domain.PreferenceService {
	return &preferenceService{repo: repo}
}

// Preferences returns the saved preferences, falling back to defaults when
// none have been saved yet.
func (s *preferenceService) Preferences(ctx context.Context) (*domain.UserPreferences, error) {
	prefs, err := s.repo.GetPreferences(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultPreferences(), nil
		}
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return prefs, nil
}

// UpdatePreferences merges the partial update over the current (possibly
// defaulted) preferences and persists the result.
func (s *preferenceService) UpdatePreferences(ctx context.Context, upd *domain.PreferencesUpdate) (*domain.UserPreferences, error) {
	prefs, err := s.Preferences(ctx)
	if err != nil {
		return nil, err
	}

	if upd.DisplayName != nil {
		prefs.DisplayName = *upd.DisplayName
	}
	if upd.DefaultSettings != nil {
		prefs.DefaultSettings = *upd.DefaultSettings
	}
	if upd.Notifications != nil {
		prefs.Notifications = *upd.Notifications
	}
	if upd.Theme != nil {
		prefs.Theme = *upd.Theme
	}

	if err := s.repo.SavePreferences(ctx, prefs); err != nil {
		return nil, fmt.Errorf("save preferences: %w", err)
	}
	return prefs, nil
}

func (s *preferenceService) CurrentUser(ctx context.Context) (*domain.CurrentUser, error) {
	user, err := s.repo.GetCurrentUser(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get current user: %w", err)
	}
	return user, nil
}

func (s *preferenceService) SetCurrentUser(ctx context.Context, u *domain.CurrentUser) error {
	if err := s.repo.SetCurrentUser(ctx, u); err != nil {
		return fmt.Errorf("set current user: %w", err)
	}
	return nil
}
