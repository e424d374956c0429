package app

import (
	"fmt"

	"triptracker/internal/domain"
	"triptracker/internal/export"
	"triptracker/internal/logging"
	"triptracker/internal/services/report"
	"triptracker/internal/services/resolve"
	"triptracker/internal/services/schedule"
	"triptracker/internal/services/validate"
)

// Wire bundles the pipeline services and the chosen exporter.
type Wire struct {
	Validator domain.Validator
	Resolver  domain.ContactResolver
	Scheduler domain.ScheduleGenerator
	Assembler domain.ReportAssembler
	Exporter  domain.Exporter
	Log       *logging.Logger
}

// NewWire constructs the dependency graph from cfg. A nil exporter is wired
// when cfg.OutputPath is empty (check-only runs).
func NewWire(cfg Config) (*Wire, error) {
	log, err := logging.New(cfg.Verbose)
	if err != nil {
		return nil, err
	}

	var exp domain.Exporter
	if cfg.OutputPath != "" {
		switch cfg.Format {
		case "xlsx", "":
			exp = export.NewXLSX(cfg.OutputPath)
		case "csv":
			exp = export.NewCSV(cfg.OutputPath)
		default:
			return nil, &domain.ConfigError{
				Param:  "format",
				Reason: fmt.Sprintf("%q is not a supported export format (xlsx, csv)", cfg.Format),
			}
		}
	}

	return &Wire{
		Validator: validate.New(),
		Resolver:  resolve.New(),
		Scheduler: schedule.New(),
		Assembler: report.New(),
		Exporter:  exp,
		Log:       log,
	}, nil
}
