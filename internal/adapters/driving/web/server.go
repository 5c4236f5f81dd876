// Package web serves the boardroom display page and its JSON API.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iripple/boardroom/internal/core/ports/driven"
	"github.com/iripple/boardroom/internal/core/ports/driving"
)

// Server is the boardroom HTTP server.
type Server struct {
	http *http.Server
	log  zerolog.Logger
}

// New builds the HTTP server: the meetings API, the display config
// endpoint, health and metrics, and the embedded static client.
func New(addr string, meetings driving.MeetingService, settings driven.DisplaySettings, log zerolog.Logger, verbose bool) *Server {
	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(log), Metrics())

	h := &handlers{meetings: meetings, settings: settings, log: log}
	engine.GET("/api/meetings", h.listMeetings)
	engine.GET("/api/config", h.displayConfig)
	engine.GET("/healthz", h.health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	registerStatic(engine)

	return &Server{
		http: &http.Server{
			Addr:         addr,
			Handler:      engine,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		log: log,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info().Str("addr", s.http.Addr).Msg("boardroom server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
