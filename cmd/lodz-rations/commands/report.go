package commands

import (
	"fmt"

	"github.com/cl455/lodz-rations/internal/rations"
	"github.com/cl455/lodz-rations/internal/report"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var noOpen bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a standalone HTML report and open it in the browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := fetchInputs()
		if err != nil {
			return err
		}

		result, err := rations.Run(inputs, pipelineOptions())
		if err != nil {
			return err
		}

		path, err := report.Write(cfg.ReportDir, result)
		if err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", path)

		if !noOpen {
			if err := report.Open(path); err != nil {
				log.Warn().Err(err).Msg("Failed to open report in browser")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVar(&noOpen, "no-open", false, "do not open the report in the browser")
}
