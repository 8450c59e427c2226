package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pr-poehali-dev/dark-cacao-run/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [player]",
	Short: "Show the leaderboard",
	Long: `Display the best runs of all players. With a player name the
player's stats are shown below the table.

Examples:
  cacao scores
  cacao scores alice
  cacao scores --limit 25
  cacao scores alice --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every run of the given player")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	var player string
	if len(args) == 1 {
		player = args[0]
	}

	if flagScoresClear {
		if player == "" {
			return fmt.Errorf("--clear needs a player name")
		}
		if err := store.ClearRuns(player); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs of %s\n", player)
		return nil
	}

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Dark Cacao Run")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'cacao play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %-10s  %s\n", "Rank", "Player", "Score", "Distance", "Outcome", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-8s  %-10s  %s\n", "----", "------", "-----", "--------", "-------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-12s  %-8d  %-8d  %-10s  %s\n",
			i+1, entry.Player, entry.Score, entry.Distance, entry.Outcome,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if player == "" {
		return nil
	}

	stats, err := store.Stats(player)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("%s: %d runs, %d boss wins, best %d, average %.0f\n",
		stats.Player, stats.Runs, stats.BossWins, stats.BestScore, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
