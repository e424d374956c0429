package validate

import (
	"fmt"
	"strings"

	"triptracker/internal/domain"
)

// Service checks accounts and contacts against the export contract and
// accumulates typed issues. It never guesses or repairs values.
type Service struct{}

// New constructs a Validator.
func New() *Service { return &Service{} }

// Validate runs all checks in input order so the issue list is stable for
// identical inputs. Returned slices are fresh; the inputs are not mutated.
func (s *Service) Validate(accounts []domain.Account, contacts []domain.Contact) ([]domain.Account, []domain.Contact, []domain.DataIssue) {
	var issues []domain.DataIssue

	// Pass 1: count identifier usage so duplicates flag every row sharing
	// the identifier, not just the later ones.
	seen := make(map[string]int)
	for _, a := range accounts {
		if a.ID != "" {
			seen[a.ID]++
		}
	}

	known := make(map[string]bool) // identifiers usable as a contact join key
	cleanAccounts := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		switch {
		case a.ID == "":
			issues = append(issues, domain.DataIssue{
				Severity:     domain.SeverityBlocker,
				Entity:       domain.EntityAccount,
				EntityID:     rowLabel(a.Row),
				Field:        "identifier",
				Message:      "missing account identifier",
				SuggestedFix: "Fill the missing identifier in the CRM and re-export.",
			})
			continue
		case seen[a.ID] > 1:
			issues = append(issues, domain.DataIssue{
				Severity:     domain.SeverityBlocker,
				Entity:       domain.EntityAccount,
				EntityID:     a.ID,
				Field:        "identifier",
				Message:      fmt.Sprintf("duplicate account identifier (%d rows share %q)", seen[a.ID], a.ID),
				SuggestedFix: "Make identifiers unique: de-duplicate the record in the CRM or confirm which row should be used.",
			})
			known[a.ID] = true // still a real account for orphan checks
			continue
		}
		known[a.ID] = true
		if a.Name == "" {
			issues = append(issues, domain.DataIssue{
				Severity:     domain.SeverityWarning,
				Entity:       domain.EntityAccount,
				EntityID:     a.ID,
				Field:        "name",
				Message:      "missing account name",
				SuggestedFix: "Fill the missing name in the CRM and re-export.",
			})
		}
		cleanAccounts = append(cleanAccounts, a)
	}

	cleanContacts := make([]domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.ID == "" {
			issues = append(issues, domain.DataIssue{
				Severity:     domain.SeverityBlocker,
				Entity:       domain.EntityContact,
				EntityID:     rowLabel(c.Row),
				Field:        "identifier",
				Message:      "missing contact identifier",
				SuggestedFix: "Fill the missing identifier in the CRM and re-export.",
			})
			continue
		}
		if c.AccountRef == "" {
			issues = append(issues, domain.DataIssue{
				Severity:     domain.SeverityBlocker,
				Entity:       domain.EntityContact,
				EntityID:     c.ID,
				Field:        "account-reference",
				Message:      "missing account reference",
				SuggestedFix: "Associate the contact with a company in the CRM and re-export.",
			})
			continue
		}
		if !known[c.AccountRef] {
			issues = append(issues, domain.DataIssue{
				Severity:     domain.SeverityBlocker,
				Entity:       domain.EntityContact,
				EntityID:     c.ID,
				Field:        "account-reference",
				Message:      fmt.Sprintf("account reference %q does not match any account", c.AccountRef),
				SuggestedFix: "Verify the account reference spelling or re-export both data sets together.",
			})
			continue
		}
		if c.Name == "" {
			issues = append(issues, domain.DataIssue{
				Severity:     domain.SeverityWarning,
				Entity:       domain.EntityContact,
				EntityID:     c.ID,
				Field:        "name",
				Message:      "missing contact name",
				SuggestedFix: "Fill the missing name in the CRM and re-export.",
			})
		}
		if c.Email != "" && !strings.Contains(c.Email, "@") {
			issues = append(issues, domain.DataIssue{
				Severity:     domain.SeverityWarning,
				Entity:       domain.EntityContact,
				EntityID:     c.ID,
				Field:        "email",
				Message:      fmt.Sprintf("email %q does not look like an address", c.Email),
				SuggestedFix: "Add a valid email address for the contact in the CRM.",
			})
		}
		cleanContacts = append(cleanContacts, c)
	}

	return cleanAccounts, cleanContacts, issues
}

// rowLabel names a record with no identifier by its source position.
func rowLabel(row int) string { return fmt.Sprintf("(row %d)", row) }

var _ domain.Validator = (*Service)(nil)
