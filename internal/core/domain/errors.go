package domain

import "errors"

// Domain errors represent listing failures. All of them collapse to a
// generic client-facing message at the HTTP boundary; only the log sink
// sees the distinguishing detail.
var (
	// ErrCalendarNotConfigured indicates no target calendar ID is set.
	ErrCalendarNotConfigured = errors.New("calendar not configured")

	// ErrCredentials indicates the service-account material is absent or
	// malformed.
	ErrCredentials = errors.New("service account credentials invalid")

	// ErrUpstream indicates the calendar provider call failed.
	ErrUpstream = errors.New("calendar provider request failed")

	// ErrDecode indicates the provider response had an unexpected shape.
	ErrDecode = errors.New("calendar response malformed")
)
