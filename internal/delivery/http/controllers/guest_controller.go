package controllers

import (
	"log/slog"
	"net/http"

	"gamenight/internal/delivery/http/helpers"
	"gamenight/internal/domain"
)

// AddGuestRequest is the request body for POST /events/{eventID}/guests.
type AddGuestRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Dietary string `json:"dietary"`
	Notes   string `json:"notes"`
}

// Validate implements Validator.
func (g AddGuestRequest) Validate() []string {
	var errs []string
	if g.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// UpdateGuestRequest is the request body for PATCH /events/{eventID}/guests/{guestID}.
type UpdateGuestRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Dietary *string `json:"dietary,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// GuestController serves RSVP operations: joining, leaving, and editing a
// spot on an event's guest list.
type GuestController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

func NewGuestController(logger *slog.Logger, svc domain.RSVPService) *GuestController {
	return &GuestController{
		Logger:  logger,
		Service: svc,
	}
}

// AddGuest godoc
// @Summary RSVP to an event
// @Description Adds a guest. Fails with event_full at capacity and duplicate_guest when the name (case-insensitive) is already on the list.
// @Tags guests
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param guest body AddGuestRequest true "Guest fields"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: event_full or duplicate_guest"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/guests [post]
func (c *GuestController) AddGuest(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req AddGuestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	guest := &domain.Guest{
		Name:    req.Name,
		Email:   req.Email,
		Dietary: req.Dietary,
		Notes:   req.Notes,
	}
	event, err := c.Service.AddGuest(r.Context(), eventID, guest)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateGuest godoc
// @Summary Edit a guest entry
// @Tags guests
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param guestID path string true "Guest ID"
// @Param guest body UpdateGuestRequest true "Fields to change"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: duplicate_guest"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/guests/{guestID} [patch]
func (c *GuestController) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	guestID := r.PathValue("guestID")
	if eventID == "" || guestID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID or guestID")
		return
	}
	var req UpdateGuestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	upd := &domain.GuestUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Dietary: req.Dietary,
		Notes:   req.Notes,
	}
	event, err := c.Service.UpdateGuest(r.Context(), eventID, guestID, upd)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// RemoveGuest godoc
// @Summary Remove a guest from an event
// @Tags guests
// @Produce json
// @Param eventID path string true "Event ID"
// @Param guestID path string true "Guest ID"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/guests/{guestID} [delete]
func (c *GuestController) RemoveGuest(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	guestID := r.PathValue("guestID")
	if eventID == "" || guestID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID or guestID")
		return
	}
	event, err := c.Service.RemoveGuest(r.Context(), eventID, guestID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}
