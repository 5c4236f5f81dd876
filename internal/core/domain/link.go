package domain

import (
	"regexp"
	"strings"
)

// zoomLinkPattern matches Zoom join URLs embedded in free text, either the
// numeric meeting form (/j/<digits>) or a personal room (/my/<slug>), with
// an optional query string. The subdomain is optional.
var zoomLinkPattern = regexp.MustCompile(`(?i)https?://(?:[a-z0-9-]+\.)?zoom\.us/(?:j/[0-9]+|my/[a-zA-Z0-9._-]+)(?:\?[^\s<>"']*)?`)

// ResolveJoinLink picks exactly one join URL for an event. Precedence:
// structured conference entry point, provider-native hangout link, a Zoom
// URL embedded in the event text, the calendar web view link. Returns the
// empty string when all candidates are absent.
func ResolveJoinLink(ev Event) string {
	for _, uri := range ev.EntryPointURIs {
		if uri != "" {
			return uri
		}
	}
	if ev.HangoutLink != "" {
		return ev.HangoutLink
	}
	if link := ExtractZoomLink(ev.searchText()); link != "" {
		return link
	}
	return ev.HTMLLink
}

// ExtractZoomLink returns the first Zoom join URL found in text, or the
// empty string when none matches.
func ExtractZoomLink(text string) string {
	return zoomLinkPattern.FindString(text)
}

// searchText concatenates the free-text fields scanned for embedded links,
// skipping absent ones.
func (e Event) searchText() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{e.Summary, e.Location, e.Description} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}
