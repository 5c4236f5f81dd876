package domain

// UntitledMeeting is the display title used when an event has no summary.
const UntitledMeeting = "Untitled meeting"

// Meeting is the flat record served to the display client, one per
// calendar event. Meetings are built fresh per request and never mutated
// after construction.
type Meeting struct {
	// ID is an opaque identifier, unique within a listing response.
	ID string `json:"id"`

	// Title is the display title, never empty.
	Title string `json:"title"`

	// Start and End are RFC 3339 timestamps, or date-only strings for
	// all-day events. Either may independently be empty when the source
	// event lacks it.
	Start string `json:"start"`
	End   string `json:"end"`

	// Link is the resolved join URL, or empty when none could be
	// determined.
	Link string `json:"link"`

	// Location is free text, possibly empty.
	Location string `json:"location"`
}

// NewMeeting normalizes an event into a Meeting. Callers drop events
// without a start before calling this.
func NewMeeting(ev Event) Meeting {
	title := ev.Summary
	if title == "" {
		title = UntitledMeeting
	}

	return Meeting{
		ID:       ev.ID,
		Title:    title,
		Start:    ev.Start(),
		End:      ev.End(),
		Link:     ResolveJoinLink(ev),
		Location: ev.Location,
	}
}
