package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/api/router"
	"github/kontos/connect/internal/config"
	"github/kontos/connect/migrations"
)

const (
	migrateFlag string = "migrate"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the stateless RESTful JSON server.
Requires configuration through ENV and a reachable PostgreSQL.`,
		Run: func(cmd *cobra.Command, _ []string) {
			applyMigrations, _ := cmd.Flags().GetBool(migrateFlag)
			runServer(cmd.Context(), applyMigrations)
		},
	}

	cmd.Flags().Bool(migrateFlag, false, "Apply pending database migrations before starting")

	return cmd
}

func runServer(ctx context.Context, applyMigrations bool) {
	cfg := config.DefaultServiceConfigFromEnv()

	configureLogger(cfg)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if applyMigrations {
		n, err := migrations.Apply(s.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
		log.Info().Int("applied", n).Msg("Finished applying migrations")
	}

	router.Init(s)

	go func() {
		if err := s.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info().Msg("Server closed")
				return
			}

			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	for _, err := range s.Shutdown(shutdownCtx) {
		log.Error().Err(err).Msg("Failed to shutdown server component")
	}
}

func configureLogger(cfg config.Server) {
	zerolog.SetGlobalLevel(cfg.Logger.Level)

	if cfg.Logger.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.TimeFormat = time.RFC3339
		}))
	}
}
