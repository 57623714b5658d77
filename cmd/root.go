package cmd

import (
	"fmt"
	"os"

	"jsonplaceholder/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// configDir is where the .env file is looked up.
	configDir string
	// outputFormat selects json or yaml for command output.
	outputFormat string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "jsonplaceholder",
	Short: "Offline-first client for the JSONPlaceholder API",
	Long: `jsonplaceholder keeps a local cache of the posts, users and albums
collections and reconciles it with the remote REST service.

Every operation prints a status envelope (loading, success or error). Reads are
answered from the cache and refreshed from the network; writes go to the
network first and are cached only when the server accepts them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch outputFormat {
		case "json", "yaml":
			return nil
		default:
			return fmt.Errorf("unsupported output format %q (want json or yaml)", outputFormat)
		}
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Development config for ISO8601 timestamps on the console.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding the .env file")
	RootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "yaml", "Output format: json or yaml")
}
