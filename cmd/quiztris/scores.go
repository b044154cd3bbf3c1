package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quiztris/internal/platform/tui"
	"github.com/vovakirdan/quiztris/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top results and overall statistics.

Examples:
  quiztris scores
  quiztris scores --limit 20
  quiztris scores --interactive
  quiztris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved results")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			return err
		}
		fmt.Println("All results deleted.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, width, height)
	}

	results, err := store.TopResults(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Quiztris")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'quiztris play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-14s  %-6s  %-5s  %-8s  %s\n", "Rank", "Player", "Score", "Lines", "End", "Date")
	fmt.Printf("  %-4s  %-14s  %-6s  %-5s  %-8s  %s\n", "----", "------", "-----", "-----", "---", "----")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-6d  %-5d  %-8s  %s\n", i+1, r.Player, r.Score, r.Lines, r.Reason, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Println(tui.FormatStats(stats))
	}
	return nil
}
