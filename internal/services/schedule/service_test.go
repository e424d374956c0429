package schedule_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"triptracker/internal/domain"
	"triptracker/internal/services/schedule"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tripCfg(start, end time.Time, seed string) domain.TripConfig {
	return domain.TripConfig{
		TripName:  "Test Trip",
		City:      "Riyadh",
		TripStart: start,
		TripEnd:   end,
		Seed:      seed,
	}
}

// manyAccounts builds n accounts all qualifying for a meeting.
func manyAccounts(n int) ([]domain.Account, domain.PrimaryAssignment) {
	accounts := make([]domain.Account, 0, n)
	primary := make(domain.PrimaryAssignment, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("A%03d", i)
		accounts = append(accounts, domain.Account{ID: id, Name: "Acct " + id, Row: i + 1})
		primary[id] = "C" + id
	}
	return accounts, primary
}

func TestGenerate_SameSeedSameSchedule(t *testing.T) {
	accounts, primary := manyAccounts(40)
	cfg := tripCfg(day(2026, time.February, 24), day(2026, time.February, 26), "42")

	first, err := schedule.New().Generate(accounts, primary, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := schedule.New().Generate(accounts, primary, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same inputs and seed must produce identical meetings")
	}
}

func TestGenerate_InputOrderDoesNotMatter(t *testing.T) {
	accounts, primary := manyAccounts(10)
	cfg := tripCfg(day(2026, time.February, 24), day(2026, time.February, 26), "7")

	forward, err := schedule.New().Generate(accounts, primary, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	reversed := make([]domain.Account, len(accounts))
	for i, a := range accounts {
		reversed[len(accounts)-1-i] = a
	}
	backward, err := schedule.New().Generate(reversed, primary, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(forward, backward) {
		t.Fatal("draws must follow canonical account order, not input order")
	}
}

func TestGenerate_DatesWithinTripRange(t *testing.T) {
	accounts, primary := manyAccounts(200)
	start, end := day(2026, time.February, 24), day(2026, time.February, 26)
	cfg := tripCfg(start, end, "99")

	meetings, err := schedule.New().Generate(accounts, primary, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(meetings) != 200 {
		t.Fatalf("expected one meeting per qualifying account, got %d", len(meetings))
	}
	hit := map[string]bool{}
	for _, m := range meetings {
		if m.Date.Before(start) || m.Date.After(end) {
			t.Fatalf("meeting date %s outside [%s, %s]", m.Date, start, end)
		}
		hit[m.Date.Format("2006-01-02")] = true
	}
	// With 200 draws over 3 days, both boundaries are reachable and hit.
	if !hit[start.Format("2006-01-02")] || !hit[end.Format("2006-01-02")] {
		t.Fatalf("expected both boundary days to be used, got %v", hit)
	}
}

func TestGenerate_SingleDayTrip(t *testing.T) {
	accounts := []domain.Account{{ID: "A1", Name: "Acme", Row: 1}}
	primary := domain.PrimaryAssignment{"A1": "C1"}
	d := day(2024, time.January, 10)
	cfg := tripCfg(d, d, "7")

	meetings, err := schedule.New().Generate(accounts, primary, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(meetings) != 1 {
		t.Fatalf("expected exactly one meeting, got %d", len(meetings))
	}
	if !meetings[0].Date.Equal(d) {
		t.Fatalf("single-day trip must schedule on %s, got %s", d, meetings[0].Date)
	}

	again, err := schedule.New().Generate(accounts, primary, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(meetings, again) {
		t.Fatal("seed 7 must reproduce the same time/address/status")
	}
}

func TestGenerate_DrawsComeFromCandidateSets(t *testing.T) {
	accounts, primary := manyAccounts(60)
	cfg := tripCfg(day(2026, time.March, 1), day(2026, time.March, 3), "5")
	cfg.TimeSlots = []string{"10:00", "14:00"}
	cfg.Statuses = []domain.Status{domain.StatusProposed, domain.StatusConfirmed}

	meetings, err := schedule.New().Generate(accounts, primary, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, m := range meetings {
		if m.Time != "10:00" && m.Time != "14:00" {
			t.Fatalf("time %q not in candidate set", m.Time)
		}
		if m.Status != domain.StatusProposed && m.Status != domain.StatusConfirmed {
			t.Fatalf("status %q not in candidate set", m.Status)
		}
	}
}

func TestGenerate_AddressFallsBackToPlaceholder(t *testing.T) {
	accounts := []domain.Account{
		{ID: "A1", Address: "King Fahd Rd", City: "Riyadh", Row: 1},
		{ID: "A2", Row: 2},
	}
	primary := domain.PrimaryAssignment{"A1": "C1", "A2": "C2"}
	cfg := tripCfg(day(2026, time.March, 1), day(2026, time.March, 2), "1")
	cfg.AddressPlaceholder = "(address TBD)"

	meetings, err := schedule.New().Generate(accounts, primary, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	byID := map[string]domain.Meeting{}
	for _, m := range meetings {
		byID[m.AccountID] = m
	}
	if byID["A1"].Address != "King Fahd Rd, Riyadh" {
		t.Fatalf("A1 address = %q", byID["A1"].Address)
	}
	if byID["A2"].Address != "(address TBD)" {
		t.Fatalf("A2 address = %q", byID["A2"].Address)
	}
}

func TestGenerate_OnlyAccountsWithPrimaryQualify(t *testing.T) {
	accounts := []domain.Account{
		{ID: "A1", Row: 1},
		{ID: "A2", Row: 2},
	}
	primary := domain.PrimaryAssignment{"A1": "C1"}
	cfg := tripCfg(day(2026, time.March, 1), day(2026, time.March, 2), "1")

	meetings, err := schedule.New().Generate(accounts, primary, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(meetings) != 1 || meetings[0].AccountID != "A1" {
		t.Fatalf("expected a meeting for A1 only, got %+v", meetings)
	}
}

func TestGenerate_ZeroQualifyingAccounts_EmptyNotError(t *testing.T) {
	cfg := tripCfg(day(2026, time.March, 1), day(2026, time.March, 2), "1")
	meetings, err := schedule.New().Generate(nil, nil, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(meetings) != 0 {
		t.Fatalf("expected no meetings, got %d", len(meetings))
	}
}

func TestGenerate_StartAfterEnd_ConfigError(t *testing.T) {
	accounts, primary := manyAccounts(3)
	cfg := tripCfg(day(2026, time.March, 5), day(2026, time.March, 1), "1")

	_, err := schedule.New().Generate(accounts, primary, cfg)
	var cerr *domain.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestGenerate_OwnerRotation(t *testing.T) {
	accounts := []domain.Account{
		{ID: "A1", Owner: "Dana", Row: 1},
		{ID: "A2", Row: 2},
		{ID: "A3", Row: 3},
	}
	primary := domain.PrimaryAssignment{"A1": "C1", "A2": "C2", "A3": "C3"}
	cfg := tripCfg(day(2026, time.March, 1), day(2026, time.March, 2), "1")
	cfg.Owners = []string{"Jason", "Meshari"}

	meetings, err := schedule.New().Generate(accounts, primary, cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	byID := map[string]string{}
	for _, m := range meetings {
		byID[m.AccountID] = m.Owner
	}
	if byID["A1"] != "Dana" {
		t.Fatalf("CRM owner must win, got %q", byID["A1"])
	}
	// A2, A3 sit at canonical positions 1 and 2 in the rotation.
	if byID["A2"] != "Meshari" || byID["A3"] != "Jason" {
		t.Fatalf("rotation mismatch: %v", byID)
	}
}
