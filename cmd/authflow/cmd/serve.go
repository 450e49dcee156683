package cmd

import (
	"github.com/nfrund/authflow/internal/config"
	"github.com/nfrund/authflow/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server using configuration from the environment
(and an optional .env file). The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.ServerAddr = serveAddr
		}

		s, err := server.New(cfg)
		if err != nil {
			return err
		}
		s.RegisterRoutes()
		return s.Start()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address, overrides SERVER_ADDR")
	rootCmd.AddCommand(serveCmd)
}
