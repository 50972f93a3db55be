// Command extract runs the task extraction pipeline from the command line.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "extract",
	Short: "Turn a chat message into a task name and timestamp",
	Long: `extract sends a message through the same two-step pipeline the bot uses:
one model call for the task name and one for the timestamp, merged into
{"task": ..., "timestamp": ...}.

Use "extract run" against the configured providers, or "extract scan" to
check how a raw model completion would be parsed without calling a model.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./config/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", formatJSON, "output format: json or yaml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
