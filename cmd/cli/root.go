package main

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/hoopstats/internal/config"
	"github.com/mauv0809/hoopstats/internal/database"
	"github.com/mauv0809/hoopstats/internal/metrics"
	"github.com/mauv0809/hoopstats/internal/storage"
	"github.com/mauv0809/hoopstats/internal/tracker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// app holds the state shared by every subcommand for one invocation.
type app struct {
	dbPath   string
	verbose  bool
	window   int
	tracker  *tracker.Tracker
	teardown func()
}

func newRootCmd() (*cobra.Command, *app) {
	cfg := config.Load()
	a := &app{window: cfg.HistoryWindow}

	rootCmd := &cobra.Command{
		Use:   "hoopstats",
		Short: "Track your basketball stats locally",
		Long: `A command-line client for recording per-game basketball statistics
and viewing career highs, the season summary and running totals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetLevel(log.WarnLevel)
			if a.verbose {
				log.SetLevel(log.DebugLevel)
			}
			return a.open()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", cfg.DBName, "Path to the local stats database")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(
		newRegisterCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newAddGameCmd(a),
		newHistoryCmd(a),
		newStatsCmd(a),
	)
	return rootCmd, a
}

func (a *app) open() error {
	db, teardown, err := database.InitDB(a.dbPath)
	if err != nil {
		return err
	}
	// The CLI exits after one command, so its counters are never scraped.
	t, err := tracker.New(storage.New(db), metrics.NewService(prometheus.NewRegistry()))
	if err != nil {
		teardown()
		return err
	}
	a.tracker = t
	a.teardown = teardown
	return nil
}

// close releases the database opened for the command, if any.
func (a *app) close() {
	if a.teardown == nil {
		return
	}
	a.teardown()
	a.teardown = nil
	log.Debug("Closed local database", "path", a.dbPath)
}
