package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-kid/internal/storage"
)

var (
	flagLimit  int
	flagClear  bool
	flagPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best flights and overall statistics.

Examples:
  rocketkid scores
  rocketkid scores --limit 20
  rocketkid scores --player kid
  rocketkid scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of flights to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded flights")
	scoresCmd.Flags().StringVarP(&flagPlayer, "player", "p", "", "Also show this player's best flight")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if version, err := store.SchemaVersion(); err == nil {
		newLogger(cmd.ErrOrStderr(), "rocketkid").Debug("score database", "path", flagDBPath, "schema", version)
	}

	out := cmd.OutOrStdout()
	if flagClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Fprintln(out, "All scores cleared.")
		return nil
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Rocket Kid")
	fmt.Fprintln(out)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'rocketkid play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-16s  %-8s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-16s  %-8d  %s\n", i+1, entry.Player, entry.Score, entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Flights: %d  Best: %d  Average: %.1f\n", stats.Flights, stats.HighScore, stats.AvgScore)

	if flagPlayer != "" {
		best, err := store.PlayerBest(flagPlayer)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Best for %s: %d\n", flagPlayer, best)
	}
	return nil
}
