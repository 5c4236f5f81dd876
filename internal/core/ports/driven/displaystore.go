package driven

import "github.com/iripple/boardroom/internal/core/domain"

// DisplaySettings exposes the hot-reloadable display configuration:
// the static join links shown on the page and the exclusion list applied
// to listings. Reads must be safe for concurrent requests.
type DisplaySettings interface {
	// Display returns the static links and invite address.
	Display() domain.DisplayConfig

	// Exclusions returns the current exclusion list.
	Exclusions() domain.ExclusionList
}
