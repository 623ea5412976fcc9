package controllers

import (
	"log/slog"
	"net/http"

	"gamenight/internal/delivery/http/helpers"
	"gamenight/internal/domain"
)

// ShareLinkResponse carries a freshly minted share link.
type ShareLinkResponse struct {
	URL string `json:"url"`
}

// ImportSharedRequest is the request body for POST /shared/import.
type ImportSharedRequest struct {
	Token string `json:"token"`
}

// Validate implements Validator.
func (i ImportSharedRequest) Validate() []string {
	if i.Token == "" {
		return []string{"token is required"}
	}
	return nil
}

// ShareController mints share links, resolves them into read-only views,
// and imports shared events into the local collection.
type ShareController struct {
	Logger  *slog.Logger
	Service domain.ShareService
}

func NewShareController(logger *slog.Logger, svc domain.ShareService) *ShareController {
	return &ShareController{
		Logger:  logger,
		Service: svc,
	}
}

// ShareLink godoc
// @Summary Mint a share link for an event
// @Description The link carries a signed snapshot of the event's fields, so the viewer needs no access to this store.
// @Tags sharing
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains {url}"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/share [get]
func (c *ShareController) ShareLink(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	link, err := c.Service.ShareLink(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ShareLinkResponse{URL: link})
}

// Resolve godoc
// @Summary Resolve a share token into a read-only event view
// @Tags sharing
// @Produce json
// @Param token query string true "Share token"
// @Success 200 {object} helpers.APIResponse "data contains the shared event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /shared [get]
func (c *ShareController) Resolve(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing token")
		return
	}
	shared, err := c.Service.Resolve(token)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid share token")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, shared)
}

// ImportShared godoc
// @Summary Import a shared event
// @Description Copies the shared event into the local collection under a fresh id with an empty guest list.
// @Tags sharing
// @Accept json
// @Produce json
// @Param body body ImportSharedRequest true "Share token"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the imported event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shared/import [post]
func (c *ShareController) ImportShared(w http.ResponseWriter, r *http.Request) {
	var req ImportSharedRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.ImportShared(r.Context(), req.Token)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}
