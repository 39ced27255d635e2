package cmd

import (
	"os"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-history/internal"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over a websocket",
	Long:  `Starts an HTTP server with /ws for the game and /ping for health checks. Each connection plays its own game.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.RunServer(newLogger(conf.LogLevel, os.Stdout), conf)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
