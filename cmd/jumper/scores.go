package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dungeon-jump/internal/assets"
	"github.com/vovakirdan/dungeon-jump/internal/config"
	"github.com/vovakirdan/dungeon-jump/internal/leaderboard"
	"github.com/vovakirdan/dungeon-jump/internal/platform/tui"
	"github.com/vovakirdan/dungeon-jump/internal/storage"
)

var (
	flagScoresDifficulty string
	flagExport           string
	flagImport           string
	flagLimit            int
	flagInteractive      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show, import or export high scores",
	Long: `Display the top high scores, one table per difficulty.

Leaderboards can be moved between machines as plain text files with one
"<name> <score>" entry per line.

Examples:
  jumper scores
  jumper scores --difficulty hard --limit 20
  jumper scores --interactive
  jumper scores --difficulty easy --export easy.txt
  jumper scores --difficulty easy --import easy.txt`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Difficulty to show (default: all; medium for import/export)")
	scoresCmd.Flags().StringVar(&flagExport, "export", "", "Write the leaderboard to this file ('-' for stdout)")
	scoresCmd.Flags().StringVar(&flagImport, "import", "", "Add the entries of a leaderboard file")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", leaderboard.DefaultSize, "Number of scores to show or export")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
}

func runScores(cmd *cobra.Command, _ []string) error {
	difficulties := config.Difficulties()
	board := config.DifficultyMedium // Import and export work on one board
	if flagScoresDifficulty != "" {
		d, err := config.ParseDifficulty(flagScoresDifficulty)
		if err != nil {
			return err
		}
		difficulties = []config.Difficulty{d}
		board = d
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagImport != "":
		return importScores(out, store, string(board))
	case flagExport != "":
		return exportScores(out, store, string(board))
	case flagInteractive:
		rt := runtimeConfig()
		_, err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
		return err
	default:
		return printScores(out, store, difficulties)
	}
}

func importScores(out io.Writer, store *storage.Store, difficulty string) error {
	f, err := os.Open(flagImport)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := store.ImportLeaderboard(f, difficulty)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Imported %d scores into the %s leaderboard.\n", n, difficulty)
	return nil
}

func exportScores(out io.Writer, store *storage.Store, difficulty string) error {
	if flagExport == "-" {
		return store.ExportLeaderboard(out, difficulty, flagLimit)
	}

	f, err := os.Create(flagExport)
	if err != nil {
		return err
	}
	if err := store.ExportLeaderboard(f, difficulty, flagLimit); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Exported the %s leaderboard to %s.\n", difficulty, flagExport)
	return nil
}

func printScores(out io.Writer, store *storage.Store, difficulties []config.Difficulty) error {
	stats, err := store.GetStats()
	if err != nil {
		return err
	}

	title := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	for i, d := range difficulties {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, title.Render("High Scores - "+string(d)))

		scores, err := store.TopScores(string(d), flagLimit)
		if err != nil {
			return err
		}
		if len(scores) == 0 {
			fmt.Fprintln(out, dim.Render("  No scores recorded yet."))
			continue
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(dim).
			Headers("Rank", "Name", "Score", "Hero", "Date")
		for rank, e := range scores {
			hero := e.Character
			if c, err := assets.Lookup(e.Character); err == nil {
				hero = c.Title
			}
			t.Row(strconv.Itoa(rank+1), e.Name, strconv.Itoa(e.Score), hero, e.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintln(out, t.String())

		if st := stats[string(d)]; st != nil {
			fmt.Fprintln(out, dim.Render(fmt.Sprintf("Best: %d  |  Runs: %d  |  Average: %.0f  |  Last played: %s",
				st.HighScore, st.RunsCount, st.AvgScore, st.LastPlayed.Format("2006-01-02"))))
		}
	}
	return nil
}
