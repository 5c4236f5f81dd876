// Package google provides service-account authentication and API client
// construction for Google Calendar, plus classification of googleapi
// errors into sentinel values.
package google
