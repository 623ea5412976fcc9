package controllers

import (
	"log/slog"
	"net/http"

	"gamenight/internal/delivery/http/helpers"
	"gamenight/internal/domain"
)

// SetCurrentUserRequest is the request body for PUT /user.
type SetCurrentUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate implements Validator.
func (u SetCurrentUserRequest) Validate() []string {
	if u.Name == "" {
		return []string{"name is required"}
	}
	return nil
}

// PreferencesController serves the preferences and current-user singletons.
type PreferencesController struct {
	Logger  *slog.Logger
	Service domain.PreferenceService
}

func NewPreferencesController(logger *slog.Logger, svc domain.PreferenceService) *PreferencesController {
	return &PreferencesController{
		Logger:  logger,
		Service: svc,
	}
}

// GetPreferences godoc
// @Summary Get preferences
// @Description Returns saved preferences, or the defaults when none have been saved.
// @Tags preferences
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the preferences"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /preferences [get]
func (c *PreferencesController) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := c.Service.Preferences(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, prefs)
}

// UpdatePreferences godoc
// @Summary Update preferences
// @Description Merges the given fields over the current preferences; absent fields are untouched.
// @Tags preferences
// @Accept json
// @Produce json
// @Param preferences body domain.PreferencesUpdate true "Fields to change"
// @Success 200 {object} helpers.APIResponse "data contains the merged preferences"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /preferences [patch]
func (c *PreferencesController) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req domain.PreferencesUpdate
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	prefs, err := c.Service.UpdatePreferences(r.Context(), &req)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, prefs)
}

// GetCurrentUser godoc
// @Summary Get the current user
// @Tags preferences
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the user"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no user set)"
// @Router /user [get]
func (c *PreferencesController) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := c.Service.CurrentUser(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// SetCurrentUser godoc
// @Summary Set the current user
// @Tags preferences
// @Accept json
// @Produce json
// @Param user body SetCurrentUserRequest true "User"
// @Success 200 {object} helpers.APIResponse "data contains the user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /user [put]
func (c *PreferencesController) SetCurrentUser(w http.ResponseWriter, r *http.Request) {
	var req SetCurrentUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user := &domain.CurrentUser{Name: req.Name, Email: req.Email}
	if err := c.Service.SetCurrentUser(r.Context(), user); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}
