package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamenight/internal/delivery/http/helpers"
	"gamenight/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransferService implements domain.TransferService for handler tests.
type fakeTransferService struct {
	exportErr    error
	importErr    error
	exportResult *domain.ExportBundle
	lastImport   *domain.ExportBundle
}

func (f *fakeTransferService) Export(ctx context.Context) (*domain.ExportBundle, error) {
	if f.exportErr != nil {
		return nil, f.exportErr
	}
	return f.exportResult, nil
}

func (f *fakeTransferService) Import(ctx context.Context, bundle *domain.ExportBundle) error {
	f.lastImport = bundle
	return f.importErr
}

func TestTransferController_Export(t *testing.T) {
	bundle := &domain.ExportBundle{
		Events:     []*domain.Event{{ID: "ev-1", Title: "Catan Night"}},
		ExportDate: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}

	t.Run("success", func(t *testing.T) {
		ctrl := NewTransferController(testLogger, &fakeTransferService{exportResult: bundle}, &fakeEventService{})
		req := httptest.NewRequest(http.MethodGet, "/export", nil)
		rr := httptest.NewRecorder()
		ctrl.Export(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "gamenight-export.json")
		// The download is the bare bundle, not the response envelope.
		var got domain.ExportBundle
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		require.Len(t, got.Events, 1)
		assert.Equal(t, "ev-1", got.Events[0].ID)
		assert.Nil(t, got.UserPreferences, "absent keys stay omitted")
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := NewTransferController(testLogger, &fakeTransferService{exportErr: errors.New("db error")}, &fakeEventService{})
		req := httptest.NewRequest(http.MethodGet, "/export", nil)
		rr := httptest.NewRecorder()
		ctrl.Export(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestTransferController_ExportImportRoundTrip(t *testing.T) {
	bundle := &domain.ExportBundle{
		Events: []*domain.Event{{
			ID:        "ev-1",
			Title:     "Catan Night",
			Date:      time.Date(2030, 6, 1, 19, 0, 0, 0, time.UTC),
			MaxGuests: 6,
			Duration:  180,
			Host:      domain.Host{Name: "Ana"},
			Guests:    []domain.Guest{},
			Metadata:  domain.EventMetadata{Version: 1},
		}},
		UserPreferences: domain.DefaultPreferences(),
		CurrentUser:     &domain.CurrentUser{Name: "Ana", Email: "ana@example.com"},
		ExportDate:      time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}

	exportCtrl := NewTransferController(testLogger, &fakeTransferService{exportResult: bundle}, &fakeEventService{})
	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rr := httptest.NewRecorder()
	exportCtrl.Export(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	// The literal download body must be accepted back unchanged.
	importFake := &fakeTransferService{}
	importCtrl := NewTransferController(testLogger, importFake, &fakeEventService{})
	req = httptest.NewRequest(http.MethodPost, "/import", bytes.NewReader(rr.Body.Bytes()))
	req.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	importCtrl.Import(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
	require.NotNil(t, importFake.lastImport)
	require.Len(t, importFake.lastImport.Events, 1)
	assert.Equal(t, "ev-1", importFake.lastImport.Events[0].ID)
	assert.Equal(t, "Ana", importFake.lastImport.CurrentUser.Name)
	assert.Equal(t, 8, importFake.lastImport.UserPreferences.DefaultSettings.MaxGuests)
	assert.True(t, importFake.lastImport.ExportDate.Equal(bundle.ExportDate))
}

func TestTransferController_Import(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeTransferService{}
		ctrl := NewTransferController(testLogger, fake, &fakeEventService{})
		body := `{"events":[{"id":"ev-1","title":"Catan Night","date":"2030-06-01T19:00:00Z","max_guests":6,"duration":180,"host":{"name":"Ana"},"guests":[],"metadata":{"created_at":"2026-01-01T00:00:00Z","updated_at":"2026-01-01T00:00:00Z","version":1}}],"export_date":"2026-08-29T12:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/import", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		ctrl.Import(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.Nil(t, envelope.Error)
		dataMap, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, true, dataMap["imported"])
		require.NotNil(t, fake.lastImport)
		require.Len(t, fake.lastImport.Events, 1)
		assert.Nil(t, fake.lastImport.CurrentUser)
	})

	t.Run("malformed bundle", func(t *testing.T) {
		ctrl := NewTransferController(testLogger, &fakeTransferService{}, &fakeEventService{})
		req := httptest.NewRequest(http.MethodPost, "/import", bytes.NewBufferString(`{broken`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		ctrl.Import(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := NewTransferController(testLogger, &fakeTransferService{importErr: errors.New("db error")}, &fakeEventService{})
		req := httptest.NewRequest(http.MethodPost, "/import", bytes.NewBufferString(`{"export_date":"2026-08-29T12:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		ctrl.Import(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestTransferController_Stats(t *testing.T) {
	stats := &domain.StorageStats{
		TotalEvents:    4,
		UpcomingEvents: 3,
		PastEvents:     1,
		TotalGuests:    11,
		StorageUsed:    2048,
	}
	ctrl := NewTransferController(testLogger, &fakeTransferService{}, &fakeEventService{statsResult: stats})
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rr := httptest.NewRecorder()
	ctrl.Stats(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
	dataBytes, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var got domain.StorageStats
	require.NoError(t, json.Unmarshal(dataBytes, &got))
	assert.Equal(t, 4, got.TotalEvents)
	assert.Equal(t, 11, got.TotalGuests)
}
