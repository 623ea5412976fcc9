package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"gamenight/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

func mustBlob(t *testing.T, events []*domain.Event) []byte {
	t.Helper()
	raw, err := json.Marshal(events)
	require.NoError(t, err)
	return raw
}

func storedEvent(id, title string) *domain.Event {
	return &domain.Event{
		ID:        id,
		Title:     title,
		Date:      time.Date(2026, 10, 3, 19, 0, 0, 0, time.UTC),
		MaxGuests: 6,
		Duration:  180,
		Host:      domain.Host{Name: "Alex"},
		Guests:    []domain.Guest{},
		Metadata: domain.EventMetadata{
			CreatedAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Version:   1,
		},
	}
}

func expectEventsBlob(mock sqlmock.Sqlmock, blob []byte) {
	rows := sqlmock.NewRows([]string{"value"}).AddRow(blob)
	mock.ExpectQuery(`SELECT value FROM kv_store`).
		WithArgs(keyEvents).
		WillReturnRows(rows)
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		mock    func(t *testing.T, mock sqlmock.Sqlmock)
		want    string // expected title; "" means error expected
		errIs   error
		wantErr bool
	}{
		{
			name: "success",
			id:   "ev-1",
			mock: func(t *testing.T, mock sqlmock.Sqlmock) {
				blob := mustBlob(t, []*domain.Event{storedEvent("ev-1", "Board Games Night"), storedEvent("ev-2", "Poker")})
				expectEventsBlob(mock, blob)
			},
			want: "Board Games Night",
		},
		{
			name: "not found in collection",
			id:   "ev-missing",
			mock: func(t *testing.T, mock sqlmock.Sqlmock) {
				expectEventsBlob(mock, mustBlob(t, []*domain.Event{storedEvent("ev-1", "Poker")}))
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name: "no blob at all",
			id:   "ev-1",
			mock: func(t *testing.T, mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value FROM kv_store`).
					WithArgs(keyEvents).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name: "corrupt blob reads as empty",
			id:   "ev-1",
			mock: func(t *testing.T, mock sqlmock.Sqlmock) {
				expectEventsBlob(mock, []byte(`{{not json`))
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name: "db error",
			id:   "ev-1",
			mock: func(t *testing.T, mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value FROM kv_store`).
					WithArgs(keyEvents).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(t, mock)
			repo := NewEventRepository(NewKVStore(db), testLogger)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Title)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Empty store: the read misses, then the full one-element blob is written.
	mock.ExpectQuery(`SELECT value FROM kv_store`).
		WithArgs(keyEvents).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`INSERT INTO kv_store \(key, value, updated_at\)`).
		WithArgs(keyEvents, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewEventRepository(NewKVStore(db), testLogger)
	require.NoError(t, repo.Create(ctx, storedEvent("ev-1", "Board Games Night")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces matching record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectEventsBlob(mock, mustBlob(t, []*domain.Event{storedEvent("ev-1", "Old Title")}))
		mock.ExpectExec(`INSERT INTO kv_store \(key, value, updated_at\)`).
			WithArgs(keyEvents, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewEventRepository(NewKVStore(db), testLogger)
		updated := storedEvent("ev-1", "New Title")
		require.NoError(t, repo.Update(ctx, updated))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectEventsBlob(mock, mustBlob(t, []*domain.Event{storedEvent("ev-1", "Poker")}))

		repo := NewEventRepository(NewKVStore(db), testLogger)
		err = repo.Update(ctx, storedEvent("ev-2", "Poker"))
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes matching record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectEventsBlob(mock, mustBlob(t, []*domain.Event{storedEvent("ev-1", "Poker"), storedEvent("ev-2", "Chess")}))
		mock.ExpectExec(`INSERT INTO kv_store \(key, value, updated_at\)`).
			WithArgs(keyEvents, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewEventRepository(NewKVStore(db), testLogger)
		require.NoError(t, repo.Delete(ctx, "ev-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id leaves blob untouched", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectEventsBlob(mock, mustBlob(t, []*domain.Event{storedEvent("ev-1", "Poker")}))

		repo := NewEventRepository(NewKVStore(db), testLogger)
		err = repo.Delete(ctx, "ev-nope")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupt blob reads as empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectEventsBlob(mock, []byte(`not json at all`))

		repo := NewEventRepository(NewKVStore(db), testLogger)
		events, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, events)
		assert.NotNil(t, events)
	})

	t.Run("absent blob reads as empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT value FROM kv_store`).
			WithArgs(keyEvents).
			WillReturnError(sql.ErrNoRows)

		repo := NewEventRepository(NewKVStore(db), testLogger)
		events, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventRepository_Size(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	blob := mustBlob(t, []*domain.Event{storedEvent("ev-1", "Poker")})
	expectEventsBlob(mock, blob)

	repo := NewEventRepository(NewKVStore(db), testLogger)
	size, err := repo.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(blob), size)
}
