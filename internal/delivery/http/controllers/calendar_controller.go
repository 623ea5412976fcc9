package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"gamenight/internal/adapters/ics"
	"gamenight/internal/dateutil"
	"gamenight/internal/delivery/http/helpers"
	"gamenight/internal/domain"
)

// CalendarCell is one day of the month grid.
type CalendarCell struct {
	Date     string   `json:"date"` // YYYY-MM-DD
	InMonth  bool     `json:"in_month"`
	Today    bool     `json:"today"`
	EventIDs []string `json:"event_ids"`
}

// CalendarGridResponse is the 42-cell month view with per-day event ids.
type CalendarGridResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CalendarCell `json:"cells"`
}

// CalendarController serves the month grid and iCalendar downloads.
type CalendarController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewCalendarController(logger *slog.Logger, svc domain.EventService) *CalendarController {
	return &CalendarController{
		Logger:  logger,
		Service: svc,
	}
}

// Grid godoc
// @Summary Month grid
// @Description Returns the 42-cell (6x7) grid for the month, starting on the Sunday on or before the 1st, with the ids of events falling on each day.
// @Tags calendar
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} helpers.APIResponse "data contains the grid"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar/{year}/{month} [get]
func (c *CalendarController) Grid(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil || year < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid year")
		return
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || month < 1 || month > 12 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid month")
		return
	}

	ref := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	grid := dateutil.CalendarGrid(ref)

	events, err := c.Service.ListEventsByDateRange(r.Context(), grid[0], dateutil.EndOfDay(grid[len(grid)-1]))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}

	now := time.Now()
	cells := make([]CalendarCell, len(grid))
	for i, day := range grid {
		cell := CalendarCell{
			Date:     day.Format("2006-01-02"),
			InMonth:  dateutil.SameMonth(day, ref),
			Today:    dateutil.SameDay(day, now),
			EventIDs: []string{},
		}
		for _, e := range events {
			if dateutil.SameDay(e.Date, day) {
				cell.EventIDs = append(cell.EventIDs, e.ID)
			}
		}
		cells[i] = cell
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, CalendarGridResponse{
		Year:  year,
		Month: month,
		Cells: cells,
	})
}

// EventICS godoc
// @Summary Download one event as iCalendar
// @Tags calendar
// @Produce text/calendar
// @Param eventID path string true "Event ID"
// @Success 200 {string} string "VCALENDAR document"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/ics [get]
func (c *CalendarController) EventICS(w http.ResponseWriter, r *http.Request) {
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
	writeICS(w, "event.ics", ics.Render([]*domain.Event{event}))
}

// CollectionICS godoc
// @Summary Download the whole collection as iCalendar
// @Tags calendar
// @Produce text/calendar
// @Success 200 {string} string "VCALENDAR document"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar.ics [get]
func (c *CalendarController) CollectionICS(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	writeICS(w, "gamenight.ics", ics.Render(events))
}

func writeICS(w http.ResponseWriter, filename, body string) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
