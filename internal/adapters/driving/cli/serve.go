package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iripple/boardroom/internal/adapters/driven/config"
	"github.com/iripple/boardroom/internal/adapters/driving/web"
	gcalendar "github.com/iripple/boardroom/internal/connectors/google/calendar"
	"github.com/iripple/boardroom/internal/core/services"
	"github.com/iripple/boardroom/internal/logger"
)

var (
	serveAddr          string
	serveDisplayConfig string
	serveVerbose       bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the boardroom display and meetings API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides BOARDROOM_ADDR)")
	serveCmd.Flags().StringVar(&serveDisplayConfig, "display-config", "", "display TOML file (overrides BOARDROOM_DISPLAY_CONFIG)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveDisplayConfig != "" {
		cfg.DisplayConfigPath = serveDisplayConfig
	}
	if serveVerbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})

	display, err := config.NewDisplayStore(cfg.DisplayConfigPath)
	if err != nil {
		return fmt.Errorf("load display config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DisplayConfigPath != "" {
		stopWatch, err := config.WatchDisplay(display, log.With().Str("component", "display-config").Logger())
		if err != nil {
			log.Warn().Err(err).Msg("display config watcher disabled")
		} else {
			defer stopWatch()
		}
	}

	if cfg.CalendarID == "" {
		log.Warn().Msg("GOOGLE_CALENDAR_ID not set, meeting listings will fail until configured")
	}

	source := gcalendar.NewSource(gcalendar.Config{
		CalendarID:         cfg.CalendarID,
		ServiceAccountJSON: cfg.ServiceAccountJSON,
		ClientEmail:        cfg.ClientEmail,
		PrivateKey:         cfg.PrivateKey,
	})
	meetings := services.NewMeetingService(source, display, cfg.CalendarID)

	srv := web.New(cfg.Addr, meetings, display, log.With().Str("component", "web").Logger(), serveVerbose)
	return srv.Run(ctx)
}
