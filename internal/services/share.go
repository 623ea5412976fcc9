package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gamenight/internal/domain"
	"gamenight/internal/validation"
)

// shareClaims carries the shared event's fields inside a signed token, so a
// link is self-contained and needs no lookup on the viewer's side.
type shareClaims struct {
	jwt.RegisteredClaims
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        int64  `json:"date"` // unix seconds
	Duration    int    `json:"duration"`
	MaxGuests   int    `json:"max_guests"`
	HostName    string `json:"host_name"`
	HostEmail   string `json:"host_email,omitempty"`
	GuestCount  int    `json:"guest_count"`
}

type shareService struct {
	events  domain.EventRepository
	secret  []byte
	baseURL string
}

// NewShareService creates a ShareService signing tokens with HS256. baseURL
// is the public origin the share links point at.
func NewShareService(events domain.EventRepository, secret, baseURL string) domain.ShareService {
	return &shareService{
		events:  events,
		secret:  []byte(secret),
		baseURL: baseURL,
	}
}

// ShareLink mints a link of the form <base>/shared?token=<signed token> for
// the given event. Tokens do not expire; the link stays valid for as long as
// the signing secret does.
func (s *shareService) ShareLink(ctx context.Context, eventID string) (string, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get event: %w", err)
	}

	claims := shareClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  event.ID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date.Unix(),
		Duration:    event.Duration,
		MaxGuests:   event.MaxGuests,
		HostName:    event.Host.Name,
		HostEmail:   event.Host.Email,
		GuestCount:  len(event.Guests),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign share token: %w", err)
	}

	q := url.Values{}
	q.Set("token", token)
	return s.baseURL + "/shared?" + q.Encode(), nil
}

// Resolve verifies the token and returns the read-only shared view.
func (s *shareService) Resolve(token string) (*domain.SharedEvent, error) {
	claims := &shareClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidShareToken, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidShareToken
	}

	return &domain.SharedEvent{
		Title:       claims.Title,
		Description: claims.Description,
		Date:        time.Unix(claims.Date, 0),
		Duration:    claims.Duration,
		MaxGuests:   claims.MaxGuests,
		Host:        domain.Host{Name: claims.HostName, Email: claims.HostEmail},
		GuestCount:  claims.GuestCount,
	}, nil
}

// ImportShared copies the shared event into the local collection under a
// fresh identity with an empty guest list. The copy carries its id before
// validation, so a past-dated shared event imports cleanly; the remaining
// field rules still apply.
func (s *shareService) ImportShared(ctx context.Context, token string) (*domain.Event, error) {
	shared, err := s.Resolve(token)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	event := &domain.Event{
		ID:          generateID(),
		Title:       shared.Title,
		Description: shared.Description,
		Date:        shared.Date,
		MaxGuests:   shared.MaxGuests,
		Duration:    shared.Duration,
		Host:        shared.Host,
		Guests:      []domain.Guest{},
		Metadata: domain.EventMetadata{
			CreatedAt: now,
			UpdatedAt: now,
			Version:   1,
		},
	}
	if event.Duration == 0 {
		event.Duration = domain.DefaultDuration
	}

	if errs := validation.ValidateEvent(event); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("import shared event: %w", err)
	}
	return event, nil
}
