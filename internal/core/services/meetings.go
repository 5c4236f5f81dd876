// Package services contains the meeting lister: window computation,
// event normalization, and the display filters.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/iripple/boardroom/internal/core/domain"
	"github.com/iripple/boardroom/internal/core/ports/driven"
	"github.com/iripple/boardroom/internal/core/ports/driving"
)

// Ensure MeetingService implements the interface.
var _ driving.MeetingService = (*MeetingService)(nil)

// ListWindow is how far ahead of "now" the calendar is queried.
const ListWindow = 24 * time.Hour

// MeetingService lists, normalizes, and filters boardroom meetings.
// Each List call is independent: one upstream round trip, no caching,
// no state between requests.
type MeetingService struct {
	events     driven.EventSource
	settings   driven.DisplaySettings
	calendarID string

	// now is swapped in tests to pin the window and the day boundary.
	now func() time.Time
}

// NewMeetingService creates a meeting service for one calendar.
// calendarID may be empty; List then fails with ErrCalendarNotConfigured,
// so the page can still serve its static links.
func NewMeetingService(events driven.EventSource, settings driven.DisplaySettings, calendarID string) *MeetingService {
	return &MeetingService{
		events:     events,
		settings:   settings,
		calendarID: calendarID,
		now:        time.Now,
	}
}

// List returns the meetings to display: events starting in [now, now+24h)
// UTC, reduced to flat records, kept only when they start on the current
// local calendar day and don't match the exclusion list. Upstream order
// (chronological by start) is preserved.
func (s *MeetingService) List(ctx context.Context) ([]domain.Meeting, error) {
	if s.calendarID == "" {
		return nil, domain.ErrCalendarNotConfigured
	}

	now := s.now()
	min := now.UTC()
	max := min.Add(ListWindow)

	events, err := s.events.List(ctx, min, max)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}

	exclusions := s.settings.Exclusions()

	meetings := make([]domain.Meeting, 0, len(events))
	for _, ev := range events {
		if !ev.HasStart() {
			continue
		}
		m := domain.NewMeeting(ev)
		if !startsOn(m.Start, now) {
			continue
		}
		if exclusions.Excluded(m) {
			continue
		}
		meetings = append(meetings, m)
	}

	return meetings, nil
}

// startsOn reports whether start falls on the same local calendar day as
// now. Unparsable starts are not displayable. The query window is UTC
// while this check is local, so an event near a day boundary can land in
// the window yet be filtered out; that mismatch is deliberate.
func startsOn(start string, now time.Time) bool {
	t, err := parseEventTime(start)
	if err != nil {
		return false
	}
	y1, m1, d1 := t.Local().Date()
	y2, m2, d2 := now.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// parseEventTime parses an event timestamp: RFC 3339 for timed events,
// date-only (interpreted in local time) for all-day events.
func parseEventTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
