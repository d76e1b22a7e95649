package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/mauv0809/hoopstats/internal/account"
	"github.com/mauv0809/hoopstats/internal/gamelog"
	"github.com/mauv0809/hoopstats/internal/stats"
	"github.com/spf13/cobra"
)

var errNotLoggedIn = errors.New("not logged in, run 'hoopstats login' first")

func newRegisterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "register <username> <password>",
		Short: "Create a local account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tracker.Register(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Registration successful!")
			return nil
		},
	}
}

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in to a local account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.tracker.Login(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", session.Username)
			return nil
		},
	}
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the current account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tracker.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, ok := a.tracker.CurrentUser()
			if !ok {
				return errNotLoggedIn
			}
			fmt.Fprintln(cmd.OutOrStdout(), username)
			return nil
		},
	}
}

func newAddGameCmd(a *app) *cobra.Command {
	var record gamelog.Record
	cmd := &cobra.Command{
		Use:   "add-game",
		Short: "Record the stats of one game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := a.tracker.CurrentUser(); !ok {
				return errNotLoggedIn
			}
			if err := record.Validate(); err != nil {
				return err
			}
			if err := a.tracker.AddGameRecord(record); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Game %d recorded\n", len(a.tracker.Games()))
			return nil
		},
	}
	cmd.Flags().IntVar(&record.Points, "points", 0, "Points scored")
	cmd.Flags().IntVar(&record.Assists, "assists", 0, "Assists")
	cmd.Flags().IntVar(&record.Rebounds, "rebounds", 0, "Rebounds")
	cmd.Flags().IntVar(&record.Blocks, "blocks", 0, "Blocks")
	cmd.Flags().IntVar(&record.Steals, "steals", 0, "Steals")
	cmd.Flags().BoolVar(&record.Won, "won", false, "Whether the game was won")
	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most recent games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := a.tracker.CurrentUser(); !ok {
				return errNotLoggedIn
			}
			games := a.tracker.Games()
			offset := 0
			if !all {
				recent := a.tracker.Recent(a.window)
				offset = len(games) - len(recent)
				games = recent
			}
			printHistory(cmd.OutOrStdout(), games, offset)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Show every recorded game")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the season summary, career highs and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := a.tracker.CurrentUser(); !ok {
				return errNotLoggedIn
			}
			out := cmd.OutOrStdout()
			summary, hasSummary := a.tracker.Summary()
			if hasSummary {
				printSummary(out, summary)
			}
			printHighs(out, a.tracker.CareerHighs())
			printTotals(out, a.tracker.Totals(), hasSummary)
			return nil
		},
	}
}

func printHistory(w io.Writer, games []gamelog.Record, offset int) {
	fmt.Fprintln(w, "Game History")
	if len(games) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		return
	}
	for i, g := range games {
		won := "No"
		if g.Won {
			won = "Yes"
		}
		fmt.Fprintf(w, "Game %d: Points: %d  Assists: %d  Rebounds: %d  Blocks: %d  Steals: %d  Won: %s\n",
			offset+i+1, g.Points, g.Assists, g.Rebounds, g.Blocks, g.Steals, won)
	}
}

func printSummary(w io.Writer, s stats.Summary) {
	fmt.Fprintln(w, "Season Summary")
	fmt.Fprintf(w, "Wins: %d\n", s.Wins)
	fmt.Fprintf(w, "Losses: %d\n", s.Losses)
	fmt.Fprintf(w, "Win Percentage: %.2f%%\n", s.WinPercentage())
	fmt.Fprintln(w, "Averages")
	fmt.Fprintf(w, "Points: %.2f\n", s.Averages.Points)
	fmt.Fprintf(w, "Assists: %.2f\n", s.Averages.Assists)
	fmt.Fprintf(w, "Rebounds: %.2f\n", s.Averages.Rebounds)
	fmt.Fprintf(w, "Blocks: %.2f\n", s.Averages.Blocks)
	fmt.Fprintf(w, "Steals: %.2f\n", s.Averages.Steals)
}

func printHighs(w io.Writer, h stats.CareerHighs) {
	fmt.Fprintln(w, "Career Highs")
	fmt.Fprintf(w, "Points: %d\n", h.Points)
	fmt.Fprintf(w, "Assists: %d\n", h.Assists)
	fmt.Fprintf(w, "Rebounds: %d\n", h.Rebounds)
	fmt.Fprintf(w, "Blocks: %d\n", h.Blocks)
	fmt.Fprintf(w, "Steals: %d\n", h.Steals)
}

func printTotals(w io.Writer, t stats.Totals, withGames bool) {
	fmt.Fprintln(w, "Totals")
	fmt.Fprintf(w, "Total Points: %d\n", t.Points)
	fmt.Fprintf(w, "Total Assists: %d\n", t.Assists)
	fmt.Fprintf(w, "Total Rebounds: %d\n", t.Rebounds)
	fmt.Fprintf(w, "Total Blocks: %d\n", t.Blocks)
	fmt.Fprintf(w, "Total Steals: %d\n", t.Steals)
	if withGames {
		fmt.Fprintf(w, "Total Games: %d\n", t.Games)
	}
}

// isUserError reports whether err is an expected account outcome rather than a failure.
func isUserError(err error) bool {
	return errors.Is(err, account.ErrEmptyField) ||
		errors.Is(err, account.ErrAlreadyExists) ||
		errors.Is(err, account.ErrInvalidCredentials) ||
		errors.Is(err, errNotLoggedIn)
}
