package schedule

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"triptracker/internal/domain"
)

// Service draws one meeting per qualifying account from a seeded PRNG.
type Service struct{}

// New constructs a ScheduleGenerator.
func New() *Service { return &Service{} }

// DefaultTimeSlots returns the business-hour candidate slots, 09:00 through
// 17:30 in half-hour increments.
func DefaultTimeSlots() []string {
	var slots []string
	for h := 9; h < 18; h++ {
		for _, m := range []int{0, 30} {
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return slots
}

// Generate validates the scheduling parameters, then iterates the accounts
// that have a resolved primary in sorted-ID order and draws date, time slot
// and status for each from a single PRNG seeded by cfg.Seed.
//
// Zero qualifying accounts is not an error: the result is simply empty.
func (s *Service) Generate(accounts []domain.Account, primary domain.PrimaryAssignment, cfg domain.TripConfig) ([]domain.Meeting, error) {
	start := midnightUTC(cfg.TripStart)
	end := midnightUTC(cfg.TripEnd)
	if start.After(end) {
		return nil, &domain.ConfigError{
			Param: "trip dates",
			Reason: fmt.Sprintf("trip start %s is after trip end %s",
				start.Format("2006-01-02"), end.Format("2006-01-02")),
		}
	}
	seed, err := ParseSeed(cfg.Seed)
	if err != nil {
		return nil, err
	}

	slots := cfg.TimeSlots
	if len(slots) == 0 {
		slots = DefaultTimeSlots()
	}
	statuses := cfg.Statuses
	if len(statuses) == 0 {
		statuses = domain.DefaultStatuses()
	}

	// Canonical order: sorted by ID, never map iteration order.
	qualifying := make([]domain.Account, 0, len(primary))
	for _, a := range accounts {
		if _, ok := primary[a.ID]; ok {
			qualifying = append(qualifying, a)
		}
	}
	sort.Slice(qualifying, func(i, j int) bool { return qualifying[i].ID < qualifying[j].ID })

	days := int(end.Sub(start).Hours()/24) + 1
	rng := rand.New(rand.NewSource(int64(seed)))

	meetings := make([]domain.Meeting, 0, len(qualifying))
	for i, a := range qualifying {
		meetings = append(meetings, domain.Meeting{
			AccountID: a.ID,
			Date:      start.AddDate(0, 0, rng.Intn(days)),
			Time:      slots[rng.Intn(len(slots))],
			Address:   meetingAddress(a, cfg),
			Owner:     meetingOwner(a, cfg, i),
			Status:    statuses[rng.Intn(len(statuses))],
		})
	}
	return meetings, nil
}

// meetingAddress joins the account's address context, or falls back to the
// configured placeholder. The account record itself is never patched.
func meetingAddress(a domain.Account, cfg domain.TripConfig) string {
	var parts []string
	for _, p := range []string{a.Address, a.City} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return cfg.AddressPlaceholder
	}
	return strings.Join(parts, ", ")
}

// meetingOwner uses the account owner when the CRM has one, otherwise
// rotates through the configured trip owners. i is the account's position
// in canonical order, so the rotation is as reproducible as the draws.
func meetingOwner(a domain.Account, cfg domain.TripConfig, i int) string {
	if a.Owner != "" {
		return a.Owner
	}
	if len(cfg.Owners) == 0 {
		return ""
	}
	return cfg.Owners[i%len(cfg.Owners)]
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var _ domain.ScheduleGenerator = (*Service)(nil)
