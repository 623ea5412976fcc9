package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"gamenight/internal/domain"
)

type preferenceRepository struct {
	store  *KVStore
	logger *slog.Logger
}

// NewPreferenceRepository returns a PreferenceRepository over the two
// singleton blobs (preferences and current user).
func NewPreferenceRepository(store *KVStore, logger *slog.Logger) domain.PreferenceRepository {
	return &preferenceRepository{
		store:  store,
		logger: logger,
	}
}

// GetPreferences returns the saved preferences or domain.ErrNotFound when
// the blob is absent. A corrupt blob also reads as absent, with a logged
// diagnostic, so callers fall back to defaults.
func (r *preferenceRepository) GetPreferences(ctx context.Context) (*domain.UserPreferences, error) {
	raw, err := r.store.get(ctx, keyPreferences)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("read preferences blob: %w", err)
	}
	p := &domain.UserPreferences{}
	if err := json.Unmarshal(raw, p); err != nil {
		r.logger.WarnContext(ctx, "preferences blob is corrupt, treating as absent", "err", err)
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *preferenceRepository) SavePreferences(ctx context.Context, p *domain.UserPreferences) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := r.store.set(ctx, keyPreferences, raw); err != nil {
		return fmt.Errorf("write preferences blob: %w", err)
	}
	return nil
}

func (r *preferenceRepository) GetCurrentUser(ctx context.Context) (*domain.CurrentUser, error) {
	raw, err := r.store.get(ctx, keyCurrentUser)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("read current user blob: %w", err)
	}
	u := &domain.CurrentUser{}
	if err := json.Unmarshal(raw, u); err != nil {
		r.logger.WarnContext(ctx, "current user blob is corrupt, treating as absent", "err", err)
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *preferenceRepository) SetCurrentUser(ctx context.Context, u *domain.CurrentUser) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal current user: %w", err)
	}
	if err := r.store.set(ctx, keyCurrentUser, raw); err != nil {
		return fmt.Errorf("write current user blob: %w", err)
	}
	return nil
}
