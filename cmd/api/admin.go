package main

import (
	"fmt"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	"github.com/ASHISH26940/portfolio-api/pkg/db/queries"
	"github.com/ASHISH26940/portfolio-api/pkg/services"
	"github.com/spf13/cobra"
)

var (
	adminUsername string
	adminPassword string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the administrator account",
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Create the admin account or set a new password for it",
	Long: `Create the admin account or set a new password for it.

Examples:
  portfolio-api admin reset-password --username admin --password 's3cret!'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close(conn)

		if err := db.Migrate(cmd.Context(), conn); err != nil {
			return err
		}

		auth := services.NewAuthService(queries.New(conn), services.NewTokenService(cfg.JwtSecret, cfg.JwtExpiresIn))
		created, err := auth.ResetPassword(cmd.Context(), adminUsername, adminPassword)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "Admin %q created.\n", adminUsername)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Password updated for admin %q.\n", adminUsername)
		}
		return nil
	},
}

func init() {
	resetPasswordCmd.Flags().StringVarP(&adminUsername, "username", "u", "admin", "Admin username")
	resetPasswordCmd.Flags().StringVarP(&adminPassword, "password", "p", "", "New password")
	_ = resetPasswordCmd.MarkFlagRequired("password")
	adminCmd.AddCommand(resetPasswordCmd)
}
