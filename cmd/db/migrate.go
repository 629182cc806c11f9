package db

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/kontos/connect/internal/config"
	"github/kontos/connect/migrations"

	// Import postgres driver for database/sql package
	_ "github.com/lib/pq"
)

func newMigrate() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Applies all pending database migrations",
		Run: func(cmd *cobra.Command, _ []string) {
			n, err := applyMigrations(cmd.Context())
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to apply migrations")
			}

			log.Info().Int("applied", n).Msg("Finished applying migrations")
		},
	}
}

func applyMigrations(ctx context.Context) (int, error) {
	cfg := config.DefaultServiceConfigFromEnv()

	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return 0, errors.Wrap(err, "failed to open database connection")
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return 0, errors.Wrap(err, "failed to ping database")
	}

	return migrations.Apply(db)
}
