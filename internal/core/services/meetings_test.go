package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iripple/boardroom/internal/core/domain"
)

// fakeEventSource returns canned events and records the requested window.
type fakeEventSource struct {
	events []domain.Event
	err    error

	gotMin time.Time
	gotMax time.Time
	calls  int
}

func (f *fakeEventSource) List(_ context.Context, min, max time.Time) ([]domain.Event, error) {
	f.calls++
	f.gotMin = min
	f.gotMax = max
	return f.events, f.err
}

// fakeSettings serves a fixed exclusion list.
type fakeSettings struct {
	exclusions domain.ExclusionList
}

func (f *fakeSettings) Display() domain.DisplayConfig    { return domain.DisplayConfig{} }
func (f *fakeSettings) Exclusions() domain.ExclusionList { return f.exclusions }

func newTestService(src *fakeEventSource, settings *fakeSettings, now time.Time) *MeetingService {
	if settings == nil {
		settings = &fakeSettings{}
	}
	svc := NewMeetingService(src, settings, "boardroom@example.com")
	svc.now = func() time.Time { return now }
	return svc
}

func TestListQueriesNext24HoursUTC(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.Local)
	src := &fakeEventSource{}
	svc := newTestService(src, nil, now)

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, now.UTC(), src.gotMin)
	assert.Equal(t, now.UTC().Add(24*time.Hour), src.gotMax)
}

func TestListDropsEventsWithoutStart(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.Local)
	src := &fakeEventSource{events: []domain.Event{
		{ID: "no-start", Summary: "Ghost"},
		{ID: "ok", Summary: "Standup", StartDateTime: now.Add(time.Hour).Format(time.RFC3339)},
	}}
	svc := newTestService(src, nil, now)

	meetings, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, meetings, 1)
	assert.Equal(t, "ok", meetings[0].ID)
}

func TestListSameDayFilter(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.Local)
	src := &fakeEventSource{events: []domain.Event{
		{ID: "today", Summary: "Standup", StartDateTime: now.Add(time.Hour).Format(time.RFC3339)},
		// Inside the 24h query window but on the next local day.
		{ID: "tomorrow", Summary: "Early sync", StartDateTime: now.Add(20 * time.Hour).Format(time.RFC3339)},
		{ID: "all-day-today", Summary: "Offsite", StartDate: now.Format("2006-01-02")},
		{ID: "unparsable", Summary: "Broken", StartDateTime: "not-a-timestamp"},
	}}
	svc := newTestService(src, nil, now)

	meetings, err := svc.List(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(meetings))
	for _, m := range meetings {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"today", "all-day-today"}, ids)
}

func TestListAppliesExclusions(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.Local)
	start := now.Add(time.Hour).Format(time.RFC3339)
	src := &fakeEventSource{events: []domain.Event{
		{ID: "keep", Summary: "Standup", StartDateTime: start},
		{ID: "ban-title", Summary: "Boardroom hold", StartDateTime: start},
		{ID: "ban-id", Summary: "Weekly", StartDateTime: start},
	}}
	settings := &fakeSettings{exclusions: domain.ExclusionList{
		Titles:     []string{"Boardroom hold"},
		MeetingIDs: []string{"ban-id"},
	}}
	svc := newTestService(src, settings, now)

	meetings, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, meetings, 1)
	assert.Equal(t, "keep", meetings[0].ID)
}

func TestListPreservesUpstreamOrder(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.Local)
	src := &fakeEventSource{events: []domain.Event{
		{ID: "a", Summary: "First", StartDateTime: now.Add(time.Hour).Format(time.RFC3339)},
		{ID: "b", Summary: "Second", StartDateTime: now.Add(2 * time.Hour).Format(time.RFC3339)},
		{ID: "c", Summary: "Third", StartDateTime: now.Add(3 * time.Hour).Format(time.RFC3339)},
	}}
	svc := newTestService(src, nil, now)

	meetings, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, meetings, 3)
	assert.Equal(t, "a", meetings[0].ID)
	assert.Equal(t, "b", meetings[1].ID)
	assert.Equal(t, "c", meetings[2].ID)
}

func TestListEmptyCalendarReturnsEmptySlice(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.Local)
	svc := newTestService(&fakeEventSource{}, nil, now)

	meetings, err := svc.List(context.Background())
	require.NoError(t, err)

	// Non-nil so the JSON body is {"meetings":[]}, not {"meetings":null}.
	require.NotNil(t, meetings)
	assert.Empty(t, meetings)
}

func TestListMissingCalendarID(t *testing.T) {
	src := &fakeEventSource{}
	svc := NewMeetingService(src, &fakeSettings{}, "")

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrCalendarNotConfigured)
	assert.Zero(t, src.calls, "upstream must not be called without a calendar ID")
}

func TestListWrapsUpstreamErrors(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.Local)
	src := &fakeEventSource{err: domain.ErrUpstream}
	svc := newTestService(src, nil, now)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestListPropagatesCredentialErrors(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.Local)
	src := &fakeEventSource{err: domain.ErrCredentials}
	svc := newTestService(src, nil, now)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrCredentials)
	assert.NotErrorIs(t, err, errors.New("other"))
}

func TestListIdempotent(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.Local)
	src := &fakeEventSource{events: []domain.Event{
		{ID: "a", Summary: "Standup", StartDateTime: now.Add(time.Hour).Format(time.RFC3339)},
	}}
	svc := newTestService(src, nil, now)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, src.calls, "each listing triggers its own upstream call")
}

func TestStartsOn(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		start string
		want  bool
	}{
		{"same day timed", now.Add(2 * time.Hour).Format(time.RFC3339), true},
		{"next day timed", now.AddDate(0, 0, 1).Format(time.RFC3339), false},
		{"same day date-only", "2026-08-31", true},
		{"next day date-only", "2026-09-01", false},
		{"unparsable", "whenever", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, startsOn(tt.start, now))
		})
	}
}
