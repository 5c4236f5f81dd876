package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeeting(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  Meeting
	}{
		{
			name: "timed event with all fields",
			event: Event{
				ID:            "ev1",
				Summary:       "Standup",
				Location:      "Boardroom",
				StartDateTime: "2026-08-31T09:00:00+08:00",
				EndDateTime:   "2026-08-31T09:30:00+08:00",
				HangoutLink:   "https://meet.google.com/abc-defg-hij",
			},
			want: Meeting{
				ID:       "ev1",
				Title:    "Standup",
				Start:    "2026-08-31T09:00:00+08:00",
				End:      "2026-08-31T09:30:00+08:00",
				Link:     "https://meet.google.com/abc-defg-hij",
				Location: "Boardroom",
			},
		},
		{
			name: "all-day event falls back to date-only values",
			event: Event{
				ID:        "ev2",
				Summary:   "Offsite",
				StartDate: "2026-08-31",
				EndDate:   "2026-09-01",
			},
			want: Meeting{
				ID:    "ev2",
				Title: "Offsite",
				Start: "2026-08-31",
				End:   "2026-09-01",
			},
		},
		{
			name: "missing summary gets placeholder title",
			event: Event{
				ID:            "ev3",
				StartDateTime: "2026-08-31T09:00:00Z",
			},
			want: Meeting{
				ID:    "ev3",
				Title: UntitledMeeting,
				Start: "2026-08-31T09:00:00Z",
			},
		},
		{
			name: "end may be empty independently of start",
			event: Event{
				ID:            "ev4",
				Summary:       "Open ended",
				StartDateTime: "2026-08-31T09:00:00Z",
			},
			want: Meeting{
				ID:    "ev4",
				Title: "Open ended",
				Start: "2026-08-31T09:00:00Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMeeting(tt.event))
		})
	}
}

func TestEventHasStart(t *testing.T) {
	assert.False(t, Event{}.HasStart())
	assert.True(t, Event{StartDateTime: "2026-08-31T09:00:00Z"}.HasStart())
	assert.True(t, Event{StartDate: "2026-08-31"}.HasStart())
}

func TestEventStartEnd(t *testing.T) {
	ev := Event{
		StartDateTime: "2026-08-31T09:00:00Z",
		StartDate:     "2026-08-31",
		EndDateTime:   "2026-08-31T10:00:00Z",
		EndDate:       "2026-08-31",
	}
	// Date-time wins over the date-only value.
	assert.Equal(t, "2026-08-31T09:00:00Z", ev.Start())
	assert.Equal(t, "2026-08-31T10:00:00Z", ev.End())
}

func TestExclusionList(t *testing.T) {
	list := ExclusionList{
		Titles:     []string{"Boardroom hold"},
		MeetingIDs: []string{"placeholder-123"},
	}

	assert.True(t, list.Excluded(Meeting{Title: "Boardroom hold"}))
	assert.True(t, list.Excluded(Meeting{ID: "placeholder-123", Title: "Anything"}))
	assert.False(t, list.Excluded(Meeting{ID: "other", Title: "Standup"}))

	// Matching is exact, not substring.
	assert.False(t, list.Excluded(Meeting{Title: "Boardroom hold (moved)"}))

	var empty ExclusionList
	assert.False(t, empty.Excluded(Meeting{Title: "Standup"}))
}
