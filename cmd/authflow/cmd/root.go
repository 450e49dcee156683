package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "authflow",
	Short: "Authflow CLI tool",
	Long: `Authflow CLI runs and inspects the authentication flow server.

Available commands:
  serve       Start the HTTP server
  strength    Score a password against the strength rules
  code        Check the shape of a verification code
  routes      List the routes of the auth flows

Use "authflow [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
