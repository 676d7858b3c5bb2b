package app

import (
	"github.com/spf13/cobra"

	"github.com/coachly/coach-backend/internal/config"
	"github.com/coachly/coach-backend/internal/logger"

	"github.com/rs/zerolog/log"
)

func init() { //nolint:gochecknoinits
	agentCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory (default ./etc/)")

	rootCmd.AddCommand(agentCmd)
}

// agentCmd is the real-time media agent worker, run as a separate
// process from the API server. The agent itself is not implemented yet.
var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Start the real-time media agent worker (not implemented)",
	PreRun: func(_ *cobra.Command, _ []string) {
		if cfg, err = config.ReadConfig(configPath); err != nil {
			panic(err)
		}

		if err = logger.Init(cfg.Log); err != nil {
			panic(err)
		}
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		log.Warn().Msg("media agent worker is not implemented yet")

		return nil
	},
}
