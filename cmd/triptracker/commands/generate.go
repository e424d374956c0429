package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"triptracker/internal/app"
	"triptracker/internal/domain"
)

// generate: run the full pipeline and export the five-table report.
func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the trip tracker report from the CRM exports",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig()
			if err != nil {
				return err
			}
			if cfg.Trip.TripStart.IsZero() || cfg.Trip.TripEnd.IsZero() {
				return &domain.ConfigError{Param: "trip dates", Reason: "both --start and --end are required (or set them in --trip-config)"}
			}

			wire, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			defer wire.Log.Sync()

			rep, err := app.New(wire).Run(cfg)
			if err != nil {
				return err
			}

			blockers, warnings := issueCounts(rep.DataIssues)
			fmt.Printf("Report written to %s\n", cfg.OutputPath)
			fmt.Printf("Meetings: %d  Blockers: %d  Warnings: %d\n",
				len(rep.Meetings.Rows), blockers, warnings)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "out", "o", "trip-tracker.xlsx", "output file (xlsx) or directory (csv)")
	cmd.Flags().StringVar(&format, "format", "xlsx", "export format: xlsx or csv")
	cmd.Flags().StringVar(&tripName, "trip-name", "", "trip name for the overview sheet")
	cmd.Flags().StringVar(&city, "city", "", "trip city")
	cmd.Flags().StringVar(&startDate, "start", "", "trip start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "trip end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&seed, "seed", "", "seed for reproducible scheduling (integer or string)")
	cmd.Flags().StringSliceVar(&owners, "owners", nil, "fallback meeting owners, rotated over accounts without one")
	return cmd
}

// issueCounts tallies severities from the assembled table, so the printed
// counts always match what the sheet shows.
func issueCounts(t domain.Table) (blockers, warnings int) {
	for _, row := range t.Rows {
		if len(row) == 0 {
			continue
		}
		switch domain.Severity(row[0]) {
		case domain.SeverityBlocker:
			blockers++
		case domain.SeverityWarning:
			warnings++
		}
	}
	return blockers, warnings
}
