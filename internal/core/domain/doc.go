// Package domain contains the core types for the boardroom display:
// calendar events as returned by the provider, the flat Meeting records
// served to the display client, and the join-link resolution rules.
package domain
