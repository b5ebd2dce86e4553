package cli

import (
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/unitconv/ranger"
)

// serveCmd builds the serve command, constructing its *ranger.Ranger with newRanger.
func serveCmd(newRanger func(...ranger.RangerOption) (*ranger.Ranger, error)) *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the unit converter over HTTP",
		Long: `Serve the unit converter over HTTP until interrupted.

The server is configured by environment variables, optionally set in a .env file:
ENVIRONMENT, HOST, PORT, LOG_LEVEL, LOG_JSON, SENTRY_DSN, CORS_ORIGIN,
RATE_LIMIT, RATE_BURST, and SERVER_{READ,WRITE,IDLE}_TIMEOUT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []ranger.RangerOption{ranger.WithContext(cmd.Context())}
			if env != "" {
				opts = append(opts, ranger.WithEnv(env))
			}

			rng, err := newRanger(opts...)
			if err != nil {
				return err
			}

			return rng.Guide()
		},
	}

	cmd.Flags().StringVar(&env, "env", "", "environment to run in, overriding ENVIRONMENT")
	return cmd
}
