package domain

import "context"

// DefaultSettings holds the per-user defaults used to pre-fill new events.
type DefaultSettings struct {
	MaxGuests       int    `json:"max_guests"`
	DefaultDuration int    `json:"default_duration"`
	Timezone        string `json:"timezone"`
}

// NotificationSettings toggles the banner notification categories.
type NotificationSettings struct {
	Reminders bool `json:"reminders"`
	Updates   bool `json:"updates"`
}

// UserPreferences is a singleton per profile, read with defaults when absent.
type UserPreferences struct {
	DisplayName     string               `json:"display_name"`
	DefaultSettings DefaultSettings      `json:"default_settings"`
	Notifications   NotificationSettings `json:"notifications"`
	Theme           string               `json:"theme"`
}

// DefaultPreferences returns the preferences used when none have been saved.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		DefaultSettings: DefaultSettings{
			MaxGuests:       8,
			DefaultDuration: DefaultDuration,
			Timezone:        "Local",
		},
		Notifications: NotificationSettings{
			Reminders: true,
			Updates:   true,
		},
		Theme: "auto",
	}
}

// PreferencesUpdate is a partial preferences update; nil fields are left unchanged.
type PreferencesUpdate struct {
	DisplayName     *string               `json:"display_name,omitempty"`
	DefaultSettings *DefaultSettings      `json:"default_settings,omitempty"`
	Notifications   *NotificationSettings `json:"notifications,omitempty"`
	Theme           *string               `json:"theme,omitempty"`
}

// CurrentUser is the optional display identity used to pre-fill RSVP forms.
type CurrentUser struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// PreferenceRepository defines storage for the two singleton blobs.
// Reads return ErrNotFound when the blob is absent.
type PreferenceRepository interface {
	GetPreferences(ctx context.Context) (*UserPreferences, error)
	SavePreferences(ctx context.Context, p *UserPreferences) error
	GetCurrentUser(ctx context.Context) (*CurrentUser, error)
	SetCurrentUser(ctx context.Context, u *CurrentUser) error
}

// PreferenceService defines defaulted access to preferences and the current user.
type PreferenceService interface {
	Preferences(ctx context.Context) (*UserPreferences, error)
	UpdatePreferences(ctx context.Context, upd *PreferencesUpdate) (*UserPreferences, error)
	CurrentUser(ctx context.Context) (*CurrentUser, error)
	SetCurrentUser(ctx context.Context, u *CurrentUser) error
}
