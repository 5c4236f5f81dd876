package driving

import (
	"context"

	"github.com/iripple/boardroom/internal/core/domain"
)

// MeetingService lists the meetings to display on the boardroom page.
type MeetingService interface {
	// List returns today's meetings from the next 24 hours of the
	// boardroom calendar, normalized and filtered for display.
	List(ctx context.Context) ([]domain.Meeting, error)
}
