package command

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/api/router"
	"github/kontos/connect/internal/config"
)

// NewSubcommandGroup groups subcommands under a parent that only prints help.
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use: use,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				log.Fatal().Err(err).Msg("Failed to print help")
			}
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

// WithServer initializes a fully wired server without starting echo, runs the
// closure against it and shuts the server down afterwards. Meant for CLI
// subcommands needing access to the initialized components.
func WithServer(ctx context.Context, cfg config.Server, closure func(ctx context.Context, s *api.Server) error) error {
	s, err := api.InitNewServer(cfg)
	if err != nil {
		return err
	}

	router.Init(s)

	defer func() {
		for _, err := range s.Shutdown(ctx) {
			log.Error().Err(err).Msg("Failed to shutdown server component")
		}
	}()

	return closure(ctx, s)
}
