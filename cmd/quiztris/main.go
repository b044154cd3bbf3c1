// quiztris is a falling-block puzzle where every drop is earned by answering
// a volume unit-conversion question (L, dL, mL).
//
// Usage:
//
//	quiztris play            - Play in the terminal
//	quiztris serve           - Start SSH server for remote play
//	quiztris scores          - Show high scores
//	quiztris config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.quiztris/scores.db)
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiztris/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quiztris",
	Short: "Quiztris - unit-conversion quiz tetris in your terminal",
	Long: `Quiztris gates every block drop behind a volume conversion question.
Answer correctly and the block falls; answer wrong three times and the game
is over. Fill a row to clear it for 100 points.

Available commands:
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  quiztris play
  quiztris play --seed 42
  quiztris serve --ssh :2222
  quiztris scores --limit 20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.quiztris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the stderr logger for the --log-level flag.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig loads the configuration for the --config flag.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("loaded config", "source", src)
	return cfg, nil
}
