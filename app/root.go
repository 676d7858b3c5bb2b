// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coach-backend",
	Short: "Coach Backend is the API service behind the coaching app",
	Long: `Coach Backend is the API service behind the coaching app.
It exchanges Google sign-in assertions for locally issued session
credentials and serves the authenticated API.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
