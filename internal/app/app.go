package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"triptracker/internal/domain"
	"triptracker/internal/services/schedule"
	"triptracker/internal/tabular"
)

// App runs the pipeline: load, validate, resolve, schedule, assemble,
// export. Every stage is a pure function over the previous stage's output.
type App struct {
	wire *Wire

	// Now and NewRunID are swappable for tests; the run-log timestamp is
	// the only time-varying part of the output.
	Now      func() time.Time
	NewRunID func() string
}

// New constructs an App around a wired dependency graph.
func New(w *Wire) *App {
	return &App{
		wire:     w,
		Now:      time.Now,
		NewRunID: uuid.NewString,
	}
}

// Run executes one pipeline invocation and hands the assembled report to
// the exporter, if one is wired. Structural and configuration failures come
// back as errors before any partial output is produced; data defects only
// ever surface in the Data Issues table.
func (a *App) Run(cfg Config) (domain.Report, error) {
	log := a.wire.Log

	accountSet, err := tabular.ReadFile(cfg.AccountsPath, "accounts")
	if err != nil {
		return domain.Report{}, err
	}
	accounts, err := tabular.Accounts(accountSet)
	if err != nil {
		return domain.Report{}, err
	}

	contactSet, err := tabular.ReadFile(cfg.ContactsPath, "contacts")
	if err != nil {
		return domain.Report{}, err
	}
	contacts, err := tabular.Contacts(contactSet)
	if err != nil {
		return domain.Report{}, err
	}
	log.Info("inputs loaded", "accounts", len(accounts), "contacts", len(contacts))

	var runLog []string
	logLine := func(format string, args ...any) {
		runLog = append(runLog, fmt.Sprintf(format, args...))
	}
	logLine("%d accounts loaded from %s", len(accounts), cfg.AccountsPath)
	logLine("%d contacts loaded from %s", len(contacts), cfg.ContactsPath)

	cleanAccounts, cleanContacts, issues := a.wire.Validator.Validate(accounts, contacts)
	logLine("validation: %d of %d accounts usable, %d of %d contacts usable",
		len(cleanAccounts), len(accounts), len(cleanContacts), len(contacts))

	primary, resolveIssues := a.wire.Resolver.Resolve(cleanAccounts, cleanContacts)
	issues = append(issues, resolveIssues...)
	logLine("resolution: %d accounts have a primary contact", len(primary))

	meetings, err := a.wire.Scheduler.Generate(cleanAccounts, primary, cfg.Trip)
	if err != nil {
		return domain.Report{}, err
	}
	logLine("schedule: %d meetings generated", len(meetings))

	// Seed was already accepted by the generator; re-parse for the run log.
	seedUsed, err := schedule.ParseSeed(cfg.Trip.Seed)
	if err != nil {
		return domain.Report{}, err
	}

	blockers, warnings := domain.CountBySeverity(issues)
	log.Info("pipeline complete",
		"meetings", len(meetings), "blockers", blockers, "warnings", warnings)

	meta := domain.RunMeta{
		Trip:       cfg.Trip,
		RunID:      a.NewRunID(),
		Timestamp:  a.Now(),
		SeedUsed:   seedUsed,
		AccountsIn: len(accounts),
		ContactsIn: len(contacts),
		Log:        runLog,
	}
	rep := a.wire.Assembler.Assemble(cleanAccounts, cleanContacts, primary, meetings, issues, meta)

	if a.wire.Exporter != nil {
		if err := a.wire.Exporter.Export(rep); err != nil {
			return domain.Report{}, fmt.Errorf("exporting report: %w", err)
		}
		log.Info("report exported", "output", cfg.OutputPath, "format", cfg.Format)
	}
	return rep, nil
}
