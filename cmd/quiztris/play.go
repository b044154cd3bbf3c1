package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiztris/internal/engine"
	"github.com/vovakirdan/quiztris/internal/platform/tui"
	"github.com/vovakirdan/quiztris/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The result is saved when the game ends.

Controls:
  1-4          - Answer the question
  Left/Right   - Move the block (also h/l, a/d)
  R            - New game
  ?            - Help and unit tips
  Ctrl+S       - Save the board to ~/.quiztris/screenshots
  Q/Ctrl+C     - Quit

Examples:
  quiztris play
  quiztris play --seed 42
  quiztris play --player amy --config ./quiztris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for saved results (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("quiztris")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	player := flagPlayer
	if player == "" {
		player = os.Getenv("USER")
	}

	opts := tui.Options{Player: player}
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		opts.ScreenshotDir = filepath.Join(home, ".quiztris", "screenshots")
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		opts.Results = store
	}

	eng := engine.NewSeeded(cfg.Quiz.Options(), seed)
	if err := tui.Run(eng, cfg, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
