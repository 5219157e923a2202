package main

import (
	"fmt"
	"os"

	"github.com/ASHISH26940/portfolio-api/pkg/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfg *config.Config

// rootCmd runs the API server when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "portfolio-api",
	Short: "REST API behind the portfolio website",
	Long: `portfolio-api serves the public content of the portfolio website (projects,
experience, skills, about, intro and contact details), accepts contact messages
and exposes the authenticated admin endpoints used to edit that content.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.LoadConfig()
		closer, err := setupLogging(cfg)
		if err != nil {
			return err
		}
		cobra.OnFinalize(func() {
			if closer != nil {
				closer.Close()
			}
		})
		for _, warning := range cfg.Warnings {
			log.Warn(warning)
		}
		return cfg.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, adminCmd)
}
