// Package cli provides the quackchat command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/duckpond/quackchat/internal/config"
	"github.com/duckpond/quackchat/internal/logging"
)

var (
	rootConfigPath string
	rootLogLevel   string
	rootLogFile    string

	cfg *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&rootLogFile, "log-file", "", "write logs to file instead of stderr")
}

var rootCmd = &cobra.Command{
	Use:   "quackchat",
	Short: "Scripted two-persona chat playback",
	Long:  "QuackChat plays scripted conversations between two personas in the terminal, with typewriter pacing, branching choices and audio cues.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(rootConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		level := cfg.Log.Level
		if rootLogLevel != "" {
			level = rootLogLevel
		}
		logFile := cfg.Log.File
		if rootLogFile != "" {
			logFile = rootLogFile
		}

		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			logging.Setup(level, f)
		} else {
			logging.SetupConsole(level)
		}
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
