package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shmup/internal/config"
	"github.com/vovakirdan/tui-shmup/internal/platform/tui"
	"github.com/vovakirdan/tui-shmup/internal/storage"
)

var (
	flagScoresMode  string
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs with the wave they reached.

Examples:
  shmup scores
  shmup scores --mode hard --limit 20
  shmup scores --limit 0
  shmup scores --tui
  shmup scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "", "Only show runs of this difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show (0 for all)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored run")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in the interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) {
	if _, err := config.ParseDifficultyPreset(flagScoresMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("All runs deleted.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	scores, err := loadRuns(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	title := "High Scores"
	if flagScoresMode != "" {
		title += " - " + flagScoresMode
	}
	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shmup play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-4s  %-6s  %s\n", "Rank", "Score", "Wave", "Mode", "Date")
	fmt.Printf("  %-4s  %-10s  %-4s  %-6s  %s\n", "----", "-----", "----", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-4d  %-6s  %s\n",
			i+1, entry.Score, entry.Wave, entry.Mode, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Runs: %d  Best: %d  Best wave: %d  Average: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.BestWave, stats.AvgScore)
	}
	if best, err := storage.OpenBestScore(storage.DefaultAppName); err == nil && best.Best() > 0 {
		fmt.Printf("All-time best: %d\n", best.Best())
	}
}

// loadRuns returns the runs to list. A limit of 0 lists every run.
func loadRuns(store *storage.Store) ([]storage.ScoreEntry, error) {
	if flagScoresLimit > 0 {
		return store.TopScores(gameID, flagScoresMode, flagScoresLimit)
	}
	all, err := store.AllScores(gameID)
	if err != nil || flagScoresMode == "" {
		return all, err
	}
	var runs []storage.ScoreEntry
	for _, r := range all {
		if r.Mode == flagScoresMode {
			runs = append(runs, r)
		}
	}
	return runs, nil
}
