package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
	flagClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished games",
	Long: `Display the most recent finished games and the best one.

Examples:
  tetris history
  tetris history --limit 25
  tetris history --browse
  tetris history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the history in a scrollable table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		return clearHistory(out, store)
	}

	if flagBrowse {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunHistory(store, width, height)
	}

	return printHistory(out, store, flagLimit)
}

func clearHistory(w io.Writer, store *storage.Store) error {
	n, err := store.CountGames()
	if err != nil {
		return err
	}
	if err := store.ClearGames(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted %d games.\n", n)
	return nil
}

func printHistory(w io.Writer, store *storage.Store, limit int) error {
	games, err := store.RecentGames(limit)
	if err != nil {
		return fmt.Errorf("retrieving history: %w", err)
	}
	total, err := store.CountGames()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Game History")
	fmt.Fprintln(w)

	if len(games) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'tetris play' to record the first one!")
		return nil
	}

	fmt.Fprintf(w, "%d games recorded, showing the last %d.\n", total, len(games))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-6s  %-20s  %-6s  %-7s  %s\n", "#", "Seed", "Rounds", "Deleted", "Ended")
	fmt.Fprintf(w, "  %-6s  %-20s  %-6s  %-7s  %s\n", "-", "----", "------", "-------", "-----")

	for _, g := range games {
		ended := "-"
		if !g.EndedAt.IsZero() {
			ended = g.EndedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "  %-6d  %-20d  %-6d  %-7d  %s\n", g.ID, g.Seed, g.Rounds, g.DeletedRows, ended)
	}

	best, err := store.BestGame()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.BestSummary(best))
	return nil
}
