// Package validation holds the shared rule set applied to events and guests
// before any write, plus the HTML escaping applied wherever user-supplied
// text is embedded in rendered output.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"gamenight/internal/domain"
)

// Field length and range bounds for event and guest records.
const (
	TitleMinLen       = 3
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
	MaxGuestsMin      = 1
	MaxGuestsMax      = 50
	DurationMin       = 30
	GuestNameMinLen   = 2
	GuestNameMaxLen   = 50
	HostNameMinLen    = 2
	DietaryMaxLen     = 100
	NotesMaxLen       = 200
)

// emailRegex matches a simple local@domain.tld shape.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidateEvent checks e against the shared rule set and returns field-level
// messages; nil means valid. The future-date rule applies only to records
// without an id: creation requires a future date, while edits and imported
// copies (which already carry an id) may hold a past date.
func ValidateEvent(e *domain.Event) []string {
	var errs []string

	title := strings.TrimSpace(e.Title)
	switch {
	case title == "":
		errs = append(errs, "title is required")
	case utf8.RuneCountInString(title) < TitleMinLen || utf8.RuneCountInString(title) > TitleMaxLen:
		errs = append(errs, "title must be between 3 and 100 characters")
	}

	switch {
	case e.Date.IsZero():
		errs = append(errs, "date is required")
	case e.ID == "" && !e.Date.After(time.Now()):
		errs = append(errs, "date must be in the future")
	}

	if e.MaxGuests < MaxGuestsMin || e.MaxGuests > MaxGuestsMax {
		errs = append(errs, "max guests must be between 1 and 50")
	}

	if utf8.RuneCountInString(e.Description) > DescriptionMaxLen {
		errs = append(errs, "description must be at most 500 characters")
	}

	if e.Duration != 0 && e.Duration < DurationMin {
		errs = append(errs, "duration must be at least 30 minutes")
	}

	hostName := strings.TrimSpace(e.Host.Name)
	switch {
	case hostName == "":
		errs = append(errs, "host name is required")
	case utf8.RuneCountInString(hostName) < HostNameMinLen:
		errs = append(errs, "host name must be at least 2 characters")
	}
	if e.Host.Email != "" && !ValidEmail(e.Host.Email) {
		errs = append(errs, "host email is invalid")
	}

	return errs
}

// ValidateGuest checks g against the shared rule set and returns field-level
// messages; nil means valid.
func ValidateGuest(g *domain.Guest) []string {
	var errs []string

	name := strings.TrimSpace(g.Name)
	switch {
	case name == "":
		errs = append(errs, "name is required")
	case utf8.RuneCountInString(name) < GuestNameMinLen || utf8.RuneCountInString(name) > GuestNameMaxLen:
		errs = append(errs, "name must be between 2 and 50 characters")
	}

	if g.Email != "" && !ValidEmail(g.Email) {
		errs = append(errs, "email is invalid")
	}
	if utf8.RuneCountInString(g.Dietary) > DietaryMaxLen {
		errs = append(errs, "dietary must be at most 100 characters")
	}
	if utf8.RuneCountInString(g.Notes) > NotesMaxLen {
		errs = append(errs, "notes must be at most 200 characters")
	}

	return errs
}

// htmlEscaper maps the six characters that must be entity-escaped before
// user text is embedded in markup. This is the sole XSS defense, so it is
// applied at every render boundary that interpolates free text.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// EscapeHTML entity-escapes & < > " ' / in s.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
