package email

import (
	"testing"

	"gamenight/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_RSVPConfirmation(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.RSVPConfirmationEmailData{
		GuestName:    "Sam",
		GuestEmail:   "sam@example.com",
		EventTitle:   "Catan Night",
		HostName:     "Ana",
		WhenText:     "Jun 1, 2030, 7:00 PM",
		DurationText: "3h",
	}

	subject, htmlBody, textBody, err := r.Render("rsvp_confirmation", data)
	require.NoError(t, err)

	assert.Equal(t, "You're in: Catan Night", subject)
	assert.Contains(t, htmlBody, "Hi Sam,")
	assert.Contains(t, htmlBody, "<strong>Catan Night</strong>")
	assert.Contains(t, htmlBody, "Jun 1, 2030, 7:00 PM")
	assert.Contains(t, textBody, "Your spot at Catan Night is confirmed.")
	assert.Contains(t, textBody, "Host: Ana")
}

func TestTemplateRenderer_EscapesUserValuesInHTML(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.RSVPConfirmationEmailData{
		GuestName:    `<script>alert('x')</script>`,
		EventTitle:   `Tom & Jerry "live" / encore`,
		HostName:     "O'Brien",
		WhenText:     "Jun 1, 2030, 7:00 PM",
		DurationText: "3h",
	}

	_, htmlBody, textBody, err := r.Render("rsvp_confirmation", data)
	require.NoError(t, err)

	assert.NotContains(t, htmlBody, "<script>")
	assert.Contains(t, htmlBody, "&lt;script&gt;alert(&#x27;x&#x27;)&lt;&#x2F;script&gt;")
	assert.Contains(t, htmlBody, "Tom &amp; Jerry &quot;live&quot; &#x2F; encore")
	assert.Contains(t, htmlBody, "O&#x27;Brien")

	// The plain-text part stays readable.
	assert.Contains(t, textBody, `Tom & Jerry "live" / encore`)
	assert.Contains(t, textBody, "O'Brien")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()
	_, _, _, err := r.Render("no_such_template", nil)
	require.Error(t, err)
}
