// Aion is the command-line entry point of the AION terminal assistant.
//
// This binary owns the first-run experience: an interactive setup wizard
// that chooses the interface language, the AI provider and the model, and
// commands to inspect and validate the resulting configuration file.
//
// Usage:
//
//	aion [command] [flags]
//
// Running without arguments launches the wizard when no configuration exists
// yet, and prints the current configuration otherwise.
// See 'aion --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aion-dev/aion/internal/logging"
	"github.com/aion-dev/aion/internal/version"
)

// errReported is returned by commands that already printed their failure.
var errReported = errors.New("error already reported")

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	setup      bool
}

var rootCmd = &cobra.Command{
	Use:   "aion",
	Short: "AION terminal assistant",
	Long: `AION is an AI assistant for the terminal.

On first run the interactive setup wizard asks for the interface language,
the AI provider and the model, then saves the configuration file. Later runs
print the saved configuration. Use --setup or 'aion setup' to run the wizard
again.

API keys are never written to the configuration file; it only records the
name of the environment variable that holds the key.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: initLogging,
	RunE:              runRoot,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "", "Config file (default: OS config dir, e.g. ~/.config/aion/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $"+logging.LogLevelEnvVar+", silent when unset)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logFile, "log-file", "", "Write logs to this file instead of stderr (default: $"+logging.LogFileEnvVar+")")
	rootCmd.Flags().BoolVar(&rootFlags.setup, "setup", false, "Run the setup wizard before showing the configuration")

	rootCmd.AddCommand(versionCmd)
}

func initLogging(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logging.Options{
		Level: rootFlags.logLevel,
		File:  rootFlags.logFile,
	}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.Debug("Starting aion", zap.String("version", version.Full()), zap.String("command", cmd.CommandPath()))
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Fprintf(cmd.OutOrStdout(), "aion %s (commit: %s)\n", info.Version, info.Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", info.GoVersion, info.Platform)
	},
}
