package services

import (
	"context"
	"testing"

	"gamenight/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferService_ExportImport(t *testing.T) {
	ctx := context.Background()

	src := newFakeEventRepo()
	srcPrefs := &fakePreferenceRepo{}
	created, err := NewEventService(src).CreateEvent(ctx, newEventInput())
	require.NoError(t, err)
	require.NoError(t, NewPreferenceService(srcPrefs).SetCurrentUser(ctx, &domain.CurrentUser{Name: "Alex"}))

	bundle, err := NewTransferService(src, srcPrefs).Export(ctx)
	require.NoError(t, err)
	require.Len(t, bundle.Events, 1)
	assert.Nil(t, bundle.UserPreferences, "unsaved preferences stay out of the bundle")
	require.NotNil(t, bundle.CurrentUser)
	assert.False(t, bundle.ExportDate.IsZero())

	// Ingest into a fresh profile.
	dst := newFakeEventRepo()
	dstPrefs := &fakePreferenceRepo{}
	require.NoError(t, NewTransferService(dst, dstPrefs).Import(ctx, bundle))

	events, err := dst.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, created.ID, events[0].ID, "imported records keep their identity")

	user, err := dstPrefs.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alex", user.Name)

	_, err = dstPrefs.GetPreferences(ctx)
	require.ErrorIs(t, err, domain.ErrNotFound, "absent keys are not imported")
}

func TestTransferService_Import_Partial(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	prefs := &fakePreferenceRepo{}
	svc := NewTransferService(repo, prefs)

	existing, err := NewEventService(repo).CreateEvent(ctx, newEventInput())
	require.NoError(t, err)

	// A preferences-only bundle must leave events untouched.
	bundle := &domain.ExportBundle{UserPreferences: domain.DefaultPreferences()}
	require.NoError(t, svc.Import(ctx, bundle))

	events, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, existing.ID, events[0].ID)
	require.NotNil(t, prefs.prefs)
}

func TestTransferService_Import_EventsOverwriteWholesale(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewTransferService(repo, &fakePreferenceRepo{})

	_, err := NewEventService(repo).CreateEvent(ctx, newEventInput())
	require.NoError(t, err)

	// An empty (but present) events list replaces the collection.
	require.NoError(t, svc.Import(ctx, &domain.ExportBundle{Events: []*domain.Event{}}))
	events, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestTransferService_Import_NilBundle(t *testing.T) {
	svc := NewTransferService(newFakeEventRepo(), &fakePreferenceRepo{})
	require.Error(t, svc.Import(context.Background(), nil))
}
