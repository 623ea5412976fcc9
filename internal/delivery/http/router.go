package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"gamenight/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	eventController *controllers.EventController,
	guestController *controllers.GuestController,
	calendarController *controllers.CalendarController,
	shareController *controllers.ShareController,
	preferencesController *controllers.PreferencesController,
	transferController *controllers.TransferController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("PATCH /events/{eventID}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /events/{eventID}", eventController.DeleteEvent)

	// Guests (RSVP)
	mux.HandleFunc("POST /events/{eventID}/guests", guestController.AddGuest)
	mux.HandleFunc("PATCH /events/{eventID}/guests/{guestID}", guestController.UpdateGuest)
	mux.HandleFunc("DELETE /events/{eventID}/guests/{guestID}", guestController.RemoveGuest)

	// Calendar
	mux.HandleFunc("GET /calendar/{year}/{month}", calendarController.Grid)
	mux.HandleFunc("GET /calendar.ics", calendarController.CollectionICS)
	mux.HandleFunc("GET /events/{eventID}/ics", calendarController.EventICS)

	// Sharing
	mux.HandleFunc("GET /events/{eventID}/share", shareController.ShareLink)
	mux.HandleFunc("GET /shared", shareController.Resolve)
	mux.HandleFunc("POST /shared/import", shareController.ImportShared)

	// Preferences and current user
	mux.HandleFunc("GET /preferences", preferencesController.GetPreferences)
	mux.HandleFunc("PATCH /preferences", preferencesController.UpdatePreferences)
	mux.HandleFunc("GET /user", preferencesController.GetCurrentUser)
	mux.HandleFunc("PUT /user", preferencesController.SetCurrentUser)

	// Transfer
	mux.HandleFunc("GET /export", transferController.Export)
	mux.HandleFunc("POST /import", transferController.Import)
	mux.HandleFunc("GET /stats", transferController.Stats)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
