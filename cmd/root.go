package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shkmv/kafka-tui/internal/logging"
	"github.com/shkmv/kafka-tui/internal/tui"
)

var logLevelFlag string

// rootCmd launches the interactive terminal client when called without a
// subcommand.
var rootCmd = &cobra.Command{
	Use:   "kafka-tui",
	Short: "Terminal client for operating Kafka clusters",
	Long: `kafka-tui is an interactive terminal client for Kafka clusters:
browse topics and consumer groups, tail and produce messages, inspect
partitions and configs, and manage saved connection profiles.`,
	// SilenceUsage prevents the usage dump on runtime errors we report
	// ourselves.
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseLogLevel(logLevelFlag)
		if err != nil {
			return err
		}
		return tui.Run(level)
	},
}

func parseLogLevel(s string) (logging.Level, error) {
	switch s {
	case "debug":
		return logging.LevelDebug, nil
	case "info":
		return logging.LevelInfo, nil
	case "warn":
		return logging.LevelWarn, nil
	case "error":
		return logging.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
}

// SetVersion sets the version for the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command. Called once from main.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "kafka-tui version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero.
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log verbosity (debug, info, warn, error)")
}
