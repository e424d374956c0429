package report

import (
	"fmt"
	"sort"
	"time"

	"triptracker/internal/domain"
)

// dateLayout matches the tracker template the meetings sheet feeds into.
const dateLayout = "Jan 02, 2006"

// Service reshapes pipeline output into the five report tables.
type Service struct{}

// New constructs a ReportAssembler.
func New() *Service { return &Service{} }

// Assemble joins meetings with their account and primary-contact context and
// computes the summary tabulations. Inputs are read-only; every table is a
// fresh structure.
func (s *Service) Assemble(
	accounts []domain.Account,
	contacts []domain.Contact,
	primary domain.PrimaryAssignment,
	meetings []domain.Meeting,
	issues []domain.DataIssue,
	meta domain.RunMeta,
) domain.Report {
	accountByID := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		accountByID[a.ID] = a
	}
	contactByID := make(map[string]domain.Contact, len(contacts))
	for _, c := range contacts {
		contactByID[c.ID] = c
	}

	return domain.Report{
		Overview:   overviewTable(meta, meetings, issues),
		Meetings:   meetingsTable(meetings, accountByID, contactByID, primary, meta.Trip),
		Contacts:   contactsTable(meetings, accounts, contacts, primary, accountByID),
		Summary:    summaryTable(meetings, accountByID),
		DataIssues: issuesTable(issues),
	}
}

func overviewTable(meta domain.RunMeta, meetings []domain.Meeting, issues []domain.DataIssue) domain.Table {
	blockers, warnings := domain.CountBySeverity(issues)
	t := domain.Table{
		Name:    domain.TableOverview,
		Columns: []string{"Field", "Value"},
	}
	add := func(field, value string) { t.Rows = append(t.Rows, []string{field, value}) }

	add("Trip", meta.Trip.TripName)
	add("City", meta.Trip.City)
	add("Dates", fmt.Sprintf("%s to %s",
		meta.Trip.TripStart.Format("2006-01-02"), meta.Trip.TripEnd.Format("2006-01-02")))
	add("Seed", meta.Trip.Seed)
	add("Resolved Seed", fmt.Sprintf("%d", meta.SeedUsed))
	add("Run ID", meta.RunID)
	add("Generated At", meta.Timestamp.UTC().Format(time.RFC3339))
	add("Accounts In", fmt.Sprintf("%d", meta.AccountsIn))
	add("Contacts In", fmt.Sprintf("%d", meta.ContactsIn))
	add("Meetings Generated", fmt.Sprintf("%d", len(meetings)))
	add("Blockers", fmt.Sprintf("%d", blockers))
	add("Warnings", fmt.Sprintf("%d", warnings))
	for _, line := range meta.Log {
		add("Run Log", line)
	}
	return t
}

func meetingsTable(
	meetings []domain.Meeting,
	accountByID map[string]domain.Account,
	contactByID map[string]domain.Contact,
	primary domain.PrimaryAssignment,
	trip domain.TripConfig,
) domain.Table {
	t := domain.Table{
		Name:    domain.TableMeetings,
		Columns: append([]string(nil), domain.MeetingColumns...),
	}
	for _, m := range meetings {
		a := accountByID[m.AccountID]
		var pc domain.Contact
		if id, ok := primary[m.AccountID]; ok {
			pc = contactByID[id]
		}
		t.Rows = append(t.Rows, []string{
			a.Name,
			m.Date.Format(dateLayout),
			m.Time,
			trip.City,
			m.Address,
			m.Owner,
			pc.Name,
			pc.Email,
			string(m.Status),
			a.Description,
		})
	}
	return t
}

func contactsTable(
	meetings []domain.Meeting,
	accounts []domain.Account,
	contacts []domain.Contact,
	primary domain.PrimaryAssignment,
	accountByID map[string]domain.Account,
) domain.Table {
	scheduled := make(map[string]bool, len(meetings))
	for _, m := range meetings {
		scheduled[m.AccountID] = true
	}

	listed := make([]domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if scheduled[c.AccountRef] {
			listed = append(listed, c)
		}
	}
	sort.Slice(listed, func(i, j int) bool {
		if listed[i].AccountRef != listed[j].AccountRef {
			return listed[i].AccountRef < listed[j].AccountRef
		}
		return listed[i].Row < listed[j].Row
	})

	t := domain.Table{
		Name:    domain.TableContacts,
		Columns: append([]string(nil), domain.ContactColumns...),
	}
	for _, c := range listed {
		flag := ""
		if primary[c.AccountRef] == c.ID {
			flag = "Yes"
		}
		t.Rows = append(t.Rows, []string{
			c.AccountRef,
			accountByID[c.AccountRef].Name,
			c.ID,
			c.Name,
			c.Title,
			c.Email,
			c.Phone,
			flag,
		})
	}
	return t
}

func summaryTable(meetings []domain.Meeting, accountByID map[string]domain.Account) domain.Table {
	statusCounts := make(map[string]int)
	ownerCounts := make(map[string]int)
	industryCounts := make(map[string]int)
	for _, m := range meetings {
		statusCounts[orBlank(string(m.Status))]++
		ownerCounts[orBlank(m.Owner)]++
		industryCounts[orBlank(accountByID[m.AccountID].Industry)]++
	}

	t := domain.Table{
		Name:    domain.TableSummary,
		Columns: []string{"Section", "Category", "Count"},
	}
	writeCounts := func(section string, counts map[string]int) {
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			t.Rows = append(t.Rows, []string{section, k, fmt.Sprintf("%d", counts[k])})
		}
	}
	writeCounts("Meetings by Status", statusCounts)
	writeCounts("Meetings by Owner", ownerCounts)
	writeCounts("Accounts by Industry", industryCounts)
	return t
}

func issuesTable(issues []domain.DataIssue) domain.Table {
	ordered := append([]domain.DataIssue(nil), issues...)
	// Blockers first; stable, so accumulation order is preserved within a
	// severity.
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Severity == domain.SeverityBlocker && ordered[j].Severity != domain.SeverityBlocker
	})

	t := domain.Table{
		Name:    domain.TableDataIssues,
		Columns: append([]string(nil), domain.IssueColumns...),
	}
	for _, is := range ordered {
		t.Rows = append(t.Rows, []string{
			string(is.Severity),
			string(is.Entity),
			is.EntityID,
			is.Field,
			is.Message,
			is.SuggestedFix,
		})
	}
	return t
}

func orBlank(s string) string {
	if s == "" {
		return "(blank)"
	}
	return s
}

var _ domain.ReportAssembler = (*Service)(nil)
