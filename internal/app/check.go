package app

import (
	"triptracker/internal/domain"
	"triptracker/internal/tabular"
)

// Check loads the exports and runs validation and resolution only. It needs
// no trip settings, so data quality can be reviewed before dates and seed
// are decided.
func (a *App) Check(cfg Config) ([]domain.DataIssue, error) {
	accountSet, err := tabular.ReadFile(cfg.AccountsPath, "accounts")
	if err != nil {
		return nil, err
	}
	accounts, err := tabular.Accounts(accountSet)
	if err != nil {
		return nil, err
	}
	contactSet, err := tabular.ReadFile(cfg.ContactsPath, "contacts")
	if err != nil {
		return nil, err
	}
	contacts, err := tabular.Contacts(contactSet)
	if err != nil {
		return nil, err
	}

	cleanAccounts, cleanContacts, issues := a.wire.Validator.Validate(accounts, contacts)
	_, resolveIssues := a.wire.Resolver.Resolve(cleanAccounts, cleanContacts)
	issues = append(issues, resolveIssues...)

	blockers, warnings := domain.CountBySeverity(issues)
	a.wire.Log.Info("check complete", "blockers", blockers, "warnings", warnings)
	return issues, nil
}
