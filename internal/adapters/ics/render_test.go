package ics

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamenight/internal/domain"
)

func TestRender(t *testing.T) {
	created := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	events := []*domain.Event{
		{
			ID:          "ev-1",
			Title:       "Board Games Night",
			Description: "Bring snacks",
			Date:        time.Date(2026, 10, 3, 19, 0, 0, 0, time.UTC),
			Duration:    180,
			MaxGuests:   6,
			Host:        domain.Host{Name: "Alex", Email: "alex@example.com"},
			Metadata:    domain.EventMetadata{CreatedAt: created, UpdatedAt: created, Version: 1},
		},
		{
			ID:       "ev-2",
			Title:    "Poker",
			Date:     time.Date(2026, 10, 10, 20, 0, 0, 0, time.UTC),
			Duration: 120,
			Host:     domain.Host{Name: "Sam"},
			Metadata: domain.EventMetadata{CreatedAt: created, UpdatedAt: created, Version: 1},
		},
	}

	out := Render(events)
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "SUMMARY:Board Games Night")
	assert.Contains(t, out, "DESCRIPTION:Bring snacks")

	// The output must parse back with both events intact.
	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	parsed := cal.Events()
	require.Len(t, parsed, 2)

	start, err := parsed[0].GetStartAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(events[0].Date))
	end, err := parsed[0].GetEndAt()
	require.NoError(t, err)
	assert.True(t, end.Equal(events[0].Date.Add(3*time.Hour)), "end is start plus duration")
}

func TestRender_Empty(t *testing.T) {
	out := Render(nil)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}
