package resolve

import (
	"triptracker/internal/domain"
)

// Service groups contacts by account reference and deterministically picks
// exactly one primary per account that has at least one valid contact.
type Service struct{}

// New constructs a ContactResolver.
func New() *Service { return &Service{} }

// PrimaryLess is the total order used to pick a primary contact: a declared
// primary flag wins, then the earliest source row, then the identifier.
// Swapping the business rule means swapping this comparator.
func PrimaryLess(a, b domain.Contact) bool {
	if a.Primary != b.Primary {
		return a.Primary
	}
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.ID < b.ID
}

// Resolve partitions contacts by account reference and selects the minimum
// under PrimaryLess for each account. Contacts whose reference matches no
// account in the given set are ignored here; the validator has already
// flagged them. Accounts with zero valid contacts yield no entry and a
// warning issue.
func (s *Service) Resolve(accounts []domain.Account, contacts []domain.Contact) (domain.PrimaryAssignment, []domain.DataIssue) {
	byAccount := make(map[string][]domain.Contact)
	for _, c := range contacts {
		byAccount[c.AccountRef] = append(byAccount[c.AccountRef], c)
	}

	primary := make(domain.PrimaryAssignment, len(accounts))
	var issues []domain.DataIssue
	for _, a := range accounts {
		candidates := byAccount[a.ID]
		if len(candidates) == 0 {
			issues = append(issues, domain.DataIssue{
				Severity:     domain.SeverityWarning,
				Entity:       domain.EntityAccount,
				EntityID:     a.ID,
				Field:        "primary contact",
				Message:      "account has no primary contact",
				SuggestedFix: "Ensure contacts are associated with the correct company in the CRM and re-export.",
			})
			continue
		}
		best := candidates[0]
		for _, c := range candidates[1:] {
			if PrimaryLess(c, best) {
				best = c
			}
		}
		primary[a.ID] = best.ID
	}
	return primary, issues
}

var _ domain.ContactResolver = (*Service)(nil)
