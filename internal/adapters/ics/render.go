// Package ics renders events as iCalendar documents so they can be pulled
// into any calendar client.
package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"gamenight/internal/domain"
)

// Render serializes the given events into one VCALENDAR. Each event becomes
// a VEVENT whose end time is start plus the event duration.
func Render(events []*domain.Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	for _, e := range events {
		ev := cal.AddEvent(e.ID)
		ev.SetCreatedTime(e.Metadata.CreatedAt)
		ev.SetModifiedAt(e.Metadata.UpdatedAt)
		ev.SetDtStampTime(e.Metadata.UpdatedAt)
		ev.SetStartAt(e.Date)
		ev.SetEndAt(e.Date.Add(time.Duration(e.Duration) * time.Minute))
		ev.SetSummary(e.Title)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Host.Email != "" {
			ev.SetOrganizer("mailto:"+e.Host.Email, ical.WithCN(e.Host.Name))
		}
	}
	return cal.Serialize()
}
