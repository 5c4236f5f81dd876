package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/iripple/boardroom/internal/core/domain"
	"github.com/iripple/boardroom/internal/core/ports/driven"
	"github.com/iripple/boardroom/internal/core/ports/driving"
	"github.com/iripple/boardroom/internal/metrics"
)

// Fixed client-facing messages. Callers never see upstream detail; only
// the missing-calendar case is distinguishable.
const (
	msgCalendarNotConfigured = "GOOGLE_CALENDAR_ID not configured"
	msgFetchFailed           = "Failed to fetch meetings"
)

type handlers struct {
	meetings driving.MeetingService
	settings driven.DisplaySettings
	log      zerolog.Logger
}

// listMeetings handles GET /api/meetings.
func (h *handlers) listMeetings(c *gin.Context) {
	meetings, err := h.meetings.List(c.Request.Context())
	if err != nil {
		h.log.Error().
			Err(err).
			Str("request_id", RequestID(c)).
			Msg("meeting listing failed")
		metrics.ListingOutcomes.WithLabelValues(outcomeLabel(err)).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": clientMessage(err)})
		return
	}

	metrics.ListingOutcomes.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

// displayConfig handles GET /api/config.
func (h *handlers) displayConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Display())
}

// health handles GET /healthz.
func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// clientMessage collapses listing failures to the fixed messages.
func clientMessage(err error) string {
	if errors.Is(err, domain.ErrCalendarNotConfigured) {
		return msgCalendarNotConfigured
	}
	return msgFetchFailed
}

// outcomeLabel classifies a listing failure for metrics.
func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrCalendarNotConfigured):
		return "not_configured"
	case errors.Is(err, domain.ErrCredentials):
		return "bad_credentials"
	case errors.Is(err, domain.ErrDecode):
		return "decode_error"
	default:
		return "upstream_error"
	}
}
