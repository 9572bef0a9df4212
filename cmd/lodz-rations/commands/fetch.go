package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Refresh the on-disk snapshots of both Airtable tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		tables := []string{
			cfg.Airtable.AnnouncementsTable,
			cfg.Airtable.CaloricValuesTable,
		}

		var g errgroup.Group
		for _, table := range tables {
			table := table
			g.Go(func() error {
				records, err := store.ListRecords(table)
				if err != nil {
					return fmt.Errorf("table %q: %w", table, err)
				}
				fmt.Printf("Fetched %d records from %q\n", len(records), table)
				return nil
			})
		}
		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
