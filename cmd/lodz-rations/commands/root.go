package commands

import (
	"fmt"

	"github.com/cl455/lodz-rations/internal/airtable"
	"github.com/cl455/lodz-rations/internal/config"
	"github.com/cl455/lodz-rations/internal/logging"
	"github.com/cl455/lodz-rations/internal/rations"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig

	store airtable.Client

	unitFlag      string
	strategyFlag  string
	lookaheadFlag int
)

var rootCmd = &cobra.Command{
	Use:   "lodz-rations",
	Short: "lodz-rations computes daily food availability in the Łódź ghetto, 1940-1944",
	Long: `A research tool over the Airtable record base of dated ration announcements for
the Łódź ghetto. It computes per-item and total daily availability series (by
mass or caloric value) under selectable rationing strategies, estimates the
number of days without food, and renders a shareable report.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		store = airtable.NewClient(cfg.Airtable)

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("lodz-rations starting")
	},
	RunE: runSummary,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&unitFlag, "unit", "u", "calories", "unit of measure: mass or calories")
	rootCmd.PersistentFlags().StringVarP(&strategyFlag, "strategy", "s", "even", "rationing strategy: announced-only, even or clairvoyant")
	rootCmd.PersistentFlags().IntVarP(&lookaheadFlag, "lookahead", "w", 0, "clairvoyant lookahead window in days (7, 14 or 30)")
}

// pipelineOptions translates the CLI flags into engine options. A clairvoyant
// run without an explicit window gets the smallest recognized one.
func pipelineOptions() rations.Options {
	opts := rations.Options{
		Unit:          rations.Unit(unitFlag),
		Strategy:      rations.Strategy(strategyFlag),
		LookaheadDays: lookaheadFlag,
	}
	if opts.Strategy == rations.StrategyClairvoyant && opts.LookaheadDays == 0 {
		opts.LookaheadDays = rations.LookaheadWindows[0]
	}
	return opts
}

// fetchInputs pulls both tables (concurrently; the engine itself stays
// single-threaded) and normalizes them.
func fetchInputs() (*rations.Inputs, error) {
	var announcementRecords, caloricRecords []airtable.Record

	var g errgroup.Group
	g.Go(func() error {
		var err error
		announcementRecords, err = store.ListRecords(cfg.Airtable.AnnouncementsTable)
		return err
	})
	g.Go(func() error {
		var err error
		caloricRecords, err = store.ListRecords(cfg.Airtable.CaloricValuesTable)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	return rations.BuildInputs(announcementRecords, caloricRecords, cfg.ExcludedItems)
}
