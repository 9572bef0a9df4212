package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cl455/lodz-rations/internal/rations"

	"github.com/spf13/cobra"
)

var jsonOut string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Compute the availability series and print the headline numbers",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	rootCmd.PersistentFlags().StringVar(&jsonOut, "json", "", "optional path to write the full result as JSON")
}

func runSummary(cmd *cobra.Command, args []string) error {
	inputs, err := fetchInputs()
	if err != nil {
		return err
	}

	opts := pipelineOptions()
	result, err := rations.Run(inputs, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Observation window: %s to %s (%d days)\n",
		result.Window.Start.Format("January 2, 2006"),
		result.Window.End.Format("January 2, 2006"),
		result.Window.Days())
	fmt.Printf("Strategy: %s", opts.Strategy)
	if opts.LookaheadDays > 0 {
		fmt.Printf(" (lookahead %d days)", opts.LookaheadDays)
	}
	fmt.Printf(", unit: %s\n", opts.Unit)
	fmt.Printf("Announcements: %d, tracked items: %d\n", len(inputs.Announcements), len(inputs.Skeleton))
	fmt.Printf("Estimated days without food: %d\n", result.DaysWithoutFood)

	if jsonOut != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		if err := os.WriteFile(jsonOut, data, 0644); err != nil {
			return fmt.Errorf("failed to write JSON output: %w", err)
		}
		fmt.Printf("Full result written to %s\n", jsonOut)
	}

	return nil
}
