package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"gamenight/internal/dateutil"
	"gamenight/internal/delivery/http/helpers"
	"gamenight/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
	MaxGuests   int         `json:"max_guests"`
	Duration    int         `json:"duration"`
	Host        domain.Host `json:"host"`
}

// Validate implements Validator. Only shape checks happen here; the shared
// rule set runs in the service against the assembled record.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.Date == "" {
		errs = append(errs, "date is required")
	} else if _, ok := dateutil.Parse(c.Date); !ok {
		errs = append(errs, "date is not a recognized format")
	}
	return errs
}

// UpdateEventRequest is the request body for PATCH /events/{eventID}.
// Absent fields are left unchanged.
type UpdateEventRequest struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Date        *string      `json:"date,omitempty"`
	MaxGuests   *int         `json:"max_guests,omitempty"`
	Duration    *int         `json:"duration,omitempty"`
	Host        *domain.Host `json:"host,omitempty"`
}

// Validate implements Validator.
func (c UpdateEventRequest) Validate() []string {
	var errs []string
	if c.Date != nil {
		if _, ok := dateutil.Parse(*c.Date); !ok {
			errs = append(errs, "date is not a recognized format")
		}
	}
	return errs
}

// EventSuccessResponse is the success envelope carrying a single event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success envelope carrying a list of events.
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// DeleteEventResponse reports whether the delete matched a record.
type DeleteEventResponse struct {
	Deleted bool `json:"deleted"`
}

// EventController serves the event CRUD surface.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create a game night
// @Description Creates an event from the given fields. The id, guest list, and metadata are server-assigned; the date must be in the future.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event fields"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	date, _ := dateutil.Parse(req.Date)
	input := &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		MaxGuests:   req.MaxGuests,
		Duration:    req.Duration,
		Host:        req.Host,
	}
	created, err := c.Service.CreateEvent(r.Context(), input)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// ListEvents godoc
// @Summary List events
// @Description Returns all events, or only those whose date falls in [start, end] when both query parameters are given (RFC 3339).
// @Tags events
// @Produce json
// @Param start query string false "Range start (RFC 3339)"
// @Param end query string false "Range end (RFC 3339)"
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	var (
		events []*domain.Event
		err    error
	)
	if startStr != "" || endStr != "" {
		var start, end time.Time
		var ok bool
		if start, ok = dateutil.Parse(startStr); !ok {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid start")
			return
		}
		if end, ok = dateutil.Parse(endStr); !ok {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid end")
			return
		}
		events, err = c.Service.ListEventsByDateRange(r.Context(), start, end)
	} else {
		events, err = c.Service.ListEvents(r.Context())
	}
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by id
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Merges the given fields over the stored record, revalidates, and bumps the version. Edits may move the date into the past.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	upd := &domain.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		MaxGuests:   req.MaxGuests,
		Duration:    req.Duration,
		Host:        req.Host,
	}
	if req.Date != nil {
		date, _ := dateutil.Parse(*req.Date)
		upd.Date = &date
	}
	updated, err := c.Service.UpdateEvent(r.Context(), eventID, upd)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Hard delete, no tombstone. Reports deleted=false when the id matched nothing.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains {deleted}"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	deleted, err := c.Service.DeleteEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteEventResponse{Deleted: deleted})
}
