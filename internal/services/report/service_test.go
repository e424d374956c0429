package report_test

import (
	"reflect"
	"testing"
	"time"

	"triptracker/internal/domain"
	"triptracker/internal/services/report"
)

func sampleMeta() domain.RunMeta {
	return domain.RunMeta{
		Trip: domain.TripConfig{
			TripName:  "Riyadh Feb 2026",
			City:      "Riyadh",
			TripStart: time.Date(2026, 2, 24, 0, 0, 0, 0, time.UTC),
			TripEnd:   time.Date(2026, 2, 26, 0, 0, 0, 0, time.UTC),
			Seed:      "42",
		},
		RunID:      "run-1",
		Timestamp:  time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		SeedUsed:   42,
		AccountsIn: 2,
		ContactsIn: 3,
		Log:        []string{"2 accounts loaded"},
	}
}

func TestAssemble_MeetingsTableContract(t *testing.T) {
	accounts := []domain.Account{
		{ID: "A1", Name: "Acme", Industry: "Software", Owner: "Dana", Description: "builds things"},
	}
	contacts := []domain.Contact{
		{ID: "C1", AccountRef: "A1", Name: "Jo", Email: "jo@acme.example", Row: 1},
	}
	primary := domain.PrimaryAssignment{"A1": "C1"}
	meetings := []domain.Meeting{{
		AccountID: "A1",
		Date:      time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC),
		Time:      "10:30",
		Address:   "King Fahd Rd, Riyadh",
		Owner:     "Dana",
		Status:    domain.StatusProposed,
	}}

	rep := report.New().Assemble(accounts, contacts, primary, meetings, nil, sampleMeta())

	if !reflect.DeepEqual(rep.Meetings.Columns, domain.MeetingColumns) {
		t.Fatalf("meetings columns drifted from the template: %v", rep.Meetings.Columns)
	}
	if len(rep.Meetings.Rows) != 1 {
		t.Fatalf("expected one meeting row, got %d", len(rep.Meetings.Rows))
	}
	want := []string{
		"Acme", "Feb 25, 2026", "10:30", "Riyadh", "King Fahd Rd, Riyadh",
		"Dana", "Jo", "jo@acme.example", "Proposed", "builds things",
	}
	if !reflect.DeepEqual(rep.Meetings.Rows[0], want) {
		t.Fatalf("meeting row = %v, want %v", rep.Meetings.Rows[0], want)
	}
}

func TestAssemble_DirectoryOnlyScheduledAccounts_PrimaryFlagged(t *testing.T) {
	accounts := []domain.Account{
		{ID: "A1", Name: "Acme"},
		{ID: "A2", Name: "Globex"},
	}
	contacts := []domain.Contact{
		{ID: "C1", AccountRef: "A1", Name: "Jo", Row: 1},
		{ID: "C2", AccountRef: "A1", Name: "Sam", Row: 2},
		{ID: "C3", AccountRef: "A2", Name: "Kim", Row: 3}, // A2 has no meeting
	}
	primary := domain.PrimaryAssignment{"A1": "C1", "A2": "C3"}
	meetings := []domain.Meeting{{AccountID: "A1", Date: time.Date(2026, 2, 24, 0, 0, 0, 0, time.UTC)}}

	rep := report.New().Assemble(accounts, contacts, primary, meetings, nil, sampleMeta())

	if len(rep.Contacts.Rows) != 2 {
		t.Fatalf("directory should list contacts of scheduled accounts only, got %v", rep.Contacts.Rows)
	}
	// Columns: Account ID, Account Name, Contact ID, Name, Title, Email, Phone, Primary
	if rep.Contacts.Rows[0][2] != "C1" || rep.Contacts.Rows[0][7] != "Yes" {
		t.Fatalf("C1 should be listed first and flagged primary: %v", rep.Contacts.Rows[0])
	}
	if rep.Contacts.Rows[1][2] != "C2" || rep.Contacts.Rows[1][7] != "" {
		t.Fatalf("C2 should be listed unflagged: %v", rep.Contacts.Rows[1])
	}
}

func TestAssemble_IssuesSortedBlockersFirst(t *testing.T) {
	issues := []domain.DataIssue{
		{Severity: domain.SeverityWarning, Entity: domain.EntityAccount, EntityID: "A1", Field: "name", Message: "w1"},
		{Severity: domain.SeverityBlocker, Entity: domain.EntityContact, EntityID: "C9", Field: "account-reference", Message: "b1"},
		{Severity: domain.SeverityWarning, Entity: domain.EntityContact, EntityID: "C2", Field: "email", Message: "w2"},
		{Severity: domain.SeverityBlocker, Entity: domain.EntityAccount, EntityID: "A7", Field: "identifier", Message: "b2"},
	}

	rep := report.New().Assemble(nil, nil, nil, nil, issues, sampleMeta())

	got := make([]string, len(rep.DataIssues.Rows))
	for i, row := range rep.DataIssues.Rows {
		got[i] = row[4]
	}
	want := []string{"b1", "b2", "w1", "w2"} // blockers first, stable within severity
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("issue order = %v, want %v", got, want)
	}
}

func TestAssemble_SummaryTabulations(t *testing.T) {
	accounts := []domain.Account{
		{ID: "A1", Name: "Acme", Industry: "Software"},
		{ID: "A2", Name: "Globex"},
	}
	meetings := []domain.Meeting{
		{AccountID: "A1", Owner: "Jason", Status: domain.StatusProposed},
		{AccountID: "A2", Owner: "Jason", Status: domain.StatusConfirmed},
	}

	rep := report.New().Assemble(accounts, nil, nil, meetings, nil, sampleMeta())

	rows := map[[2]string]string{}
	for _, r := range rep.Summary.Rows {
		rows[[2]string{r[0], r[1]}] = r[2]
	}
	if rows[[2]string{"Meetings by Status", "Proposed"}] != "1" {
		t.Fatalf("status tabulation wrong: %v", rep.Summary.Rows)
	}
	if rows[[2]string{"Meetings by Owner", "Jason"}] != "2" {
		t.Fatalf("owner tabulation wrong: %v", rep.Summary.Rows)
	}
	if rows[[2]string{"Accounts by Industry", "(blank)"}] != "1" {
		t.Fatalf("blank industry should tabulate as (blank): %v", rep.Summary.Rows)
	}
}

func TestAssemble_EmptyInputs_WellFormedTables(t *testing.T) {
	rep := report.New().Assemble(nil, nil, nil, nil, nil, sampleMeta())

	for _, tbl := range rep.Tables() {
		if tbl.Name == "" || len(tbl.Columns) == 0 {
			t.Fatalf("table %+v must keep its name and header", tbl)
		}
	}
	if len(rep.Meetings.Rows) != 0 || len(rep.DataIssues.Rows) != 0 {
		t.Fatal("empty inputs must yield empty tables")
	}
}

func TestAssemble_OverviewCarriesRunFacts(t *testing.T) {
	rep := report.New().Assemble(nil, nil, nil, nil, nil, sampleMeta())

	fields := map[string]string{}
	for _, row := range rep.Overview.Rows {
		if row[0] != "Run Log" {
			fields[row[0]] = row[1]
		}
	}
	if fields["Trip"] != "Riyadh Feb 2026" || fields["Seed"] != "42" || fields["Run ID"] != "run-1" {
		t.Fatalf("overview fields wrong: %v", fields)
	}
	if fields["Dates"] != "2026-02-24 to 2026-02-26" {
		t.Fatalf("dates = %q", fields["Dates"])
	}
	if fields["Accounts In"] != "2" || fields["Contacts In"] != "3" {
		t.Fatalf("counts wrong: %v", fields)
	}
}
