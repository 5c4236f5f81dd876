package google

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// NewCalendarService creates a Google Calendar API service using the
// provided TokenSource.
func NewCalendarService(ctx context.Context, ts oauth2.TokenSource) (*calendar.Service, error) {
	return calendar.NewService(ctx, option.WithTokenSource(ts))
}
