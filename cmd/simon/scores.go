package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/storage"
)

var (
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best games",
	Long: `Display the top 10 games, the high score and overall stats.

Examples:
  simon scores
  simon scores --recent
  simon scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent games instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the game history (the high score is kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearGames(); err != nil {
			return fmt.Errorf("error clearing games: %w", err)
		}
		log.Info("game history cleared")
		fmt.Println("Game history cleared.")
		return nil
	}

	var games []storage.GameRecord
	if flagRecent {
		games, err = store.RecentGames(10)
	} else {
		games, err = store.TopGames(10)
	}
	if err != nil {
		return fmt.Errorf("error retrieving games: %w", err)
	}

	if flagRecent {
		fmt.Println("Recent Games - Simon")
	} else {
		fmt.Println("High Scores - Simon")
	}
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'simon play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-7s  %s\n", "Rank", "Score", "Length", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %s\n", "----", "-----", "------", "----")

	for i, g := range games {
		dateStr := g.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-7d  %s\n", i+1, g.Score, g.PatternLen, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
	if stats, err := store.GetStats(); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Average: %.1f  Last played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
