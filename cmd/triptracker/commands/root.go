package commands

import (
	"github.com/spf13/cobra"

	"triptracker/internal/app"
	"triptracker/internal/domain"
)

var (
	accountsPath string
	contactsPath string
	tripFile     string
	verbose      bool

	outputPath string
	format     string

	tripName  string
	city      string
	startDate string
	endDate   string
	seed      string
	owners    []string
)

func Execute() error {
	root := &cobra.Command{
		Use:           "triptracker",
		Short:         "Turn CRM exports into a multi-day trip tracker report",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&accountsPath, "accounts", "", "accounts export (.csv or .xlsx)")
	root.PersistentFlags().StringVar(&contactsPath, "contacts", "", "contacts export (.csv or .xlsx)")
	root.PersistentFlags().StringVar(&tripFile, "trip-config", "", "YAML trip settings file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	_ = root.MarkPersistentFlagRequired("accounts")
	_ = root.MarkPersistentFlagRequired("contacts")

	root.AddCommand(generateCmd(), checkCmd())
	return root.Execute()
}

// buildConfig merges flags with the optional YAML trip file; flags win.
func buildConfig() (app.Config, error) {
	cfg := app.Config{
		AccountsPath: accountsPath,
		ContactsPath: contactsPath,
		OutputPath:   outputPath,
		Format:       format,
		Verbose:      verbose,
		Trip: domain.TripConfig{
			TripName: tripName,
			City:     city,
			Seed:     seed,
			Owners:   owners,
		},
	}

	if startDate != "" {
		t, err := app.ParseDate(startDate)
		if err != nil {
			return app.Config{}, err
		}
		cfg.Trip.TripStart = t
	}
	if endDate != "" {
		t, err := app.ParseDate(endDate)
		if err != nil {
			return app.Config{}, err
		}
		cfg.Trip.TripEnd = t
	}

	if tripFile != "" {
		tf, err := app.LoadTripFile(tripFile)
		if err != nil {
			return app.Config{}, err
		}
		if err := tf.Apply(&cfg.Trip); err != nil {
			return app.Config{}, err
		}
	}
	return cfg, nil
}
