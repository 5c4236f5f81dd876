package driven

import (
	"context"
	"time"

	"github.com/iripple/boardroom/internal/core/domain"
)

// EventSource lists calendar events inside a time window.
// Implementations talk to the external provider; the meetings service only
// sees flattened domain events.
type EventSource interface {
	// List returns single-event instances starting in [min, max), ordered
	// chronologically by start time. Credentials are resolved per call;
	// nothing is cached between calls.
	List(ctx context.Context, min, max time.Time) ([]domain.Event, error)
}
