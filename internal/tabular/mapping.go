package tabular

import (
	"regexp"
	"strings"

	"triptracker/internal/domain"
)

// Header aliases per logical field, normalized form. The CRM renames columns
// between export versions, so each field accepts the names we have seen.
var accountAliases = map[string][]string{
	"id":          {"identifier", "id", "company id", "account id"},
	"name":        {"name", "companies", "company", "account name", "company name"},
	"industry":    {"industry", "primary industry group", "industry group"},
	"owner":       {"owner", "account owner"},
	"website":     {"website", "primary company website"},
	"city":        {"city", "hq city"},
	"address":     {"address", "hq address", "hq address line 1"},
	"description": {"description", "company description"},
}

var contactAliases = map[string][]string{
	"id":      {"identifier", "id", "person id", "contact id"},
	"account": {"account reference", "account ref", "account id", "company id", "primary company"},
	"name":    {"name", "people", "full name", "contact name"},
	"title":   {"title", "primary position", "position"},
	"email":   {"email", "email address"},
	"phone":   {"phone", "phone number"},
	"primary": {"primary", "is primary", "primary contact"},
}

var requiredAccountFields = []string{"id", "name"}
var requiredContactFields = []string{"id", "account", "name"}

var spaceRx = regexp.MustCompile(`[\s_-]+`)

func normHeader(s string) string {
	return spaceRx.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

// columnIndex maps logical field names to column positions using the alias
// table. Unmatched columns are reported as extras so callers can pass them
// through opaquely.
func columnIndex(columns []string, aliases map[string][]string) (idx map[string]int, extras []int) {
	byName := make(map[string]string) // normalized header -> field
	for field, names := range aliases {
		for _, n := range names {
			byName[n] = field
		}
	}
	idx = make(map[string]int)
	for i, col := range columns {
		field, ok := byName[normHeader(col)]
		if !ok {
			extras = append(extras, i)
			continue
		}
		if _, taken := idx[field]; !taken {
			idx[field] = i
		}
	}
	return idx, extras
}

func missingFields(idx map[string]int, required []string) []string {
	var missing []string
	for _, f := range required {
		if _, ok := idx[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

// Accounts maps a record set onto Account records. A required column absent
// from the header row is a structural failure.
func Accounts(rs RecordSet) ([]domain.Account, error) {
	idx, _ := columnIndex(rs.Columns, accountAliases)
	if missing := missingFields(idx, requiredAccountFields); len(missing) > 0 {
		return nil, &domain.StructuralError{Input: rs.Source, Missing: missing}
	}

	cell := func(row []string, field string) string {
		i, ok := idx[field]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	accounts := make([]domain.Account, 0, len(rs.Rows))
	for n, row := range rs.Rows {
		accounts = append(accounts, domain.Account{
			ID:          cell(row, "id"),
			Name:        cell(row, "name"),
			Industry:    cell(row, "industry"),
			Owner:       cell(row, "owner"),
			Website:     cell(row, "website"),
			City:        cell(row, "city"),
			Address:     cell(row, "address"),
			Description: cell(row, "description"),
			Row:         n + 1,
		})
	}
	return accounts, nil
}

// Contacts maps a record set onto Contact records.
func Contacts(rs RecordSet) ([]domain.Contact, error) {
	idx, _ := columnIndex(rs.Columns, contactAliases)
	if missing := missingFields(idx, requiredContactFields); len(missing) > 0 {
		return nil, &domain.StructuralError{Input: rs.Source, Missing: missing}
	}

	cell := func(row []string, field string) string {
		i, ok := idx[field]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	contacts := make([]domain.Contact, 0, len(rs.Rows))
	for n, row := range rs.Rows {
		contacts = append(contacts, domain.Contact{
			ID:         cell(row, "id"),
			AccountRef: cell(row, "account"),
			Name:       cell(row, "name"),
			Title:      cell(row, "title"),
			Email:      cell(row, "email"),
			Phone:      cell(row, "phone"),
			Primary:    truthy(cell(row, "primary")),
			Row:        n + 1,
		})
	}
	return contacts, nil
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1", "x":
		return true
	}
	return false
}
