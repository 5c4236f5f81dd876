package domain

// Event is a single calendar event as returned by the provider, reduced to
// the optional fields the meeting lister cares about. All fields may be
// empty; all-day events carry date-only values instead of date-times.
type Event struct {
	// ID is the provider's opaque event identifier.
	ID string

	// Summary is the event title.
	Summary string

	// Description is the free-text event body.
	Description string

	// Location is the free-text event location.
	Location string

	// StartDateTime is the RFC 3339 start, empty for all-day events.
	StartDateTime string
	// StartDate is the date-only start for all-day events.
	StartDate string

	// EndDateTime is the RFC 3339 end, empty for all-day events.
	EndDateTime string
	// EndDate is the date-only end for all-day events.
	EndDate string

	// EntryPointURIs are the structured conference entry points attached
	// by the provider, in provider order.
	EntryPointURIs []string

	// HangoutLink is the provider-native Meet link.
	HangoutLink string

	// HTMLLink is the event's canonical calendar web view.
	HTMLLink string
}

// HasStart reports whether the event carries any start value.
// Events without a start are dropped before normalization.
func (e Event) HasStart() bool {
	return e.StartDateTime != "" || e.StartDate != ""
}

// Start returns the event start, preferring the date-time over the
// date-only value used for all-day events.
func (e Event) Start() string {
	if e.StartDateTime != "" {
		return e.StartDateTime
	}
	return e.StartDate
}

// End returns the event end, preferring the date-time over the date-only
// value used for all-day events.
func (e Event) End() string {
	if e.EndDateTime != "" {
		return e.EndDateTime
	}
	return e.EndDate
}
