// Package calendar implements the event source over the Google Calendar
// API: a windowed listing of single-event instances, flattened into
// domain events.
package calendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/iripple/boardroom/internal/connectors/google"
	"github.com/iripple/boardroom/internal/core/domain"
	"github.com/iripple/boardroom/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.EventSource = (*Source)(nil)

// DefaultMaxResults is the page size for listing requests. The boardroom
// calendar holds far fewer events per day, so a single page suffices.
const DefaultMaxResults = 250

// Config holds the Google Calendar source configuration.
type Config struct {
	// CalendarID is the boardroom calendar to list.
	CalendarID string

	// ServiceAccountJSON is an optional base64-encoded key file.
	ServiceAccountJSON string

	// ClientEmail and PrivateKey are the discrete credential fields used
	// when no key file is provided.
	ClientEmail string
	PrivateKey  string

	// MaxResults overrides the listing page size when positive.
	MaxResults int64
}

// Source lists boardroom calendar events through the Google Calendar API.
// Credentials are resolved on every call, matching the stateless listing
// contract: nothing is cached between requests, and credential problems
// surface per request rather than at startup.
type Source struct {
	cfg Config
}

// NewSource creates a calendar event source.
func NewSource(cfg Config) *Source {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	return &Source{cfg: cfg}
}

// List returns single-event instances starting in [min, max), ordered by
// start time, with recurring series expanded by the provider.
func (s *Source) List(ctx context.Context, min, max time.Time) ([]domain.Event, error) {
	account, err := google.ParseServiceAccount(s.cfg.ServiceAccountJSON, s.cfg.ClientEmail, s.cfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	svc, err := google.NewCalendarService(ctx, account.TokenSource(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: create calendar client: %v", domain.ErrUpstream, err)
	}

	resp, err := svc.Events.List(s.cfg.CalendarID).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(min.Format(time.RFC3339)).
		TimeMax(max.Format(time.RFC3339)).
		MaxResults(s.cfg.MaxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, google.WrapError(err))
	}

	events := make([]domain.Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil {
			continue
		}
		events = append(events, FlattenEvent(item))
	}
	return events, nil
}

// FlattenEvent reduces a Google Calendar event to the optional fields the
// meeting lister uses.
func FlattenEvent(event *calendar.Event) domain.Event {
	ev := domain.Event{
		ID:          event.Id,
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		HangoutLink: event.HangoutLink,
		HTMLLink:    event.HtmlLink,
	}

	if event.Start != nil {
		ev.StartDateTime = event.Start.DateTime
		ev.StartDate = event.Start.Date
	}
	if event.End != nil {
		ev.EndDateTime = event.End.DateTime
		ev.EndDate = event.End.Date
	}

	if event.ConferenceData != nil {
		for _, ep := range event.ConferenceData.EntryPoints {
			if ep != nil && ep.Uri != "" {
				ev.EntryPointURIs = append(ev.EntryPointURIs, ep.Uri)
			}
		}
	}

	return ev
}
