package cmd

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-history/internal"
)

// logFile is relative to the XDG state directory; the terminal itself is taken by the UI.
const logFile = "tictactoe/tictactoe.log"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := xdg.StateFile(logFile)
		if err != nil {
			return fmt.Errorf("could not resolve log file: %w", err)
		}

		file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer file.Close()

		return application.RunTUI(newLogger(conf.LogLevel, file), conf)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
