package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"triptracker/internal/app"
	"triptracker/internal/domain"
)

// check: validate the exports and print every data issue, blockers first.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the CRM exports without generating a schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig()
			if err != nil {
				return err
			}

			wire, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			defer wire.Log.Sync()

			issues, err := app.New(wire).Check(cfg)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				fmt.Println("No data issues found.")
				return nil
			}

			for _, sev := range []domain.Severity{domain.SeverityBlocker, domain.SeverityWarning} {
				for _, is := range issues {
					if is.Severity != sev {
						continue
					}
					fmt.Printf("%-7s %s %s [%s]: %s\n    fix: %s\n",
						is.Severity, is.Entity, is.EntityID, is.Field, is.Message, is.SuggestedFix)
				}
			}
			blockers, warnings := domain.CountBySeverity(issues)
			fmt.Printf("%d blockers, %d warnings\n", blockers, warnings)
			return nil
		},
	}
}
