// Package driven defines the interfaces the core services depend on:
// the calendar event source and the display settings store. Adapters
// implement these against the Google Calendar API and the configuration
// layer.
package driven
