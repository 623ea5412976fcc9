package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"gamenight/internal/delivery/http/helpers"
	"gamenight/internal/domain"
)

// ImportResponse reports whether the bundle was ingested.
type ImportResponse struct {
	Imported bool `json:"imported"`
}

// TransferController serves export/import of the whole store plus stats.
type TransferController struct {
	Logger  *slog.Logger
	Service domain.TransferService
	Events  domain.EventService
}

func NewTransferController(logger *slog.Logger, svc domain.TransferService, events domain.EventService) *TransferController {
	return &TransferController{
		Logger:  logger,
		Service: svc,
		Events:  events,
	}
}

// Export godoc
// @Summary Export all data
// @Description Returns a downloadable bundle of events, preferences, and current user. The body is the bundle itself, not the response envelope, so the file can be posted back to /import unchanged.
// @Tags transfer
// @Produce json
// @Success 200 {object} domain.ExportBundle
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /export [get]
func (c *TransferController) Export(w http.ResponseWriter, r *http.Request) {
	bundle, err := c.Service.Export(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="gamenight-export.json"`)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(bundle)
}

// Import godoc
// @Summary Import a bundle
// @Description Overwrites each store whose key is present in the bundle; absent keys leave their store untouched.
// @Tags transfer
// @Accept json
// @Produce json
// @Param bundle body domain.ExportBundle true "Export bundle"
// @Success 200 {object} helpers.APIResponse "data contains {imported}"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /import [post]
func (c *TransferController) Import(w http.ResponseWriter, r *http.Request) {
	var bundle domain.ExportBundle
	if !helpers.DecodeAndValidate(w, r, &bundle) {
		return
	}
	if err := c.Service.Import(r.Context(), &bundle); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ImportResponse{Imported: true})
}

// Stats godoc
// @Summary Storage stats
// @Tags transfer
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the stats"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /stats [get]
func (c *TransferController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Events.Stats(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}
