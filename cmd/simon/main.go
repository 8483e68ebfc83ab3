// simon is a terminal rendition of the Simon memory game.
//
// Usage:
//
//	simon play               - Play a game
//	simon scores             - Show the best and most recent games
//	simon settings show      - Print the stored settings as YAML
//	simon settings reset     - Restore the default settings
//	simon settings import    - Store settings read from a YAML file
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible patterns
//	--db <path>          - Set database path (default: ~/.simon/simon.db)
//	--log-file <path>    - Write logs to this file (default: ~/.simon/simon.log)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

// logFile is closed by main once the command returns.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Simon - Repeat the pattern in your terminal",
	Long: `Simon shows a growing sequence of colors. Repeat it with the
keyboard; every round adds one more color until you slip.

Available commands:
  play      - Start a game
  scores    - View the best and most recent games
  settings  - Show, reset or import the settings

Examples:
  simon play
  simon play --difficulty hard
  simon scores
  simon settings show`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.simon/simon.db", "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.simon/simon.log", "Path to the log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
}

// setupLogging points the default logger at the log file. The terminal
// belongs to the game, so nothing is logged to stdout or stderr.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = f

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "simon",
		Level:           level,
	})
	log.SetDefault(logger)
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
