package domain

import "time"

// Account is one row of the Accounts export. ID is the join key for
// contacts; everything else is display context carried into the report.
type Account struct {
	ID          string
	Name        string
	Industry    string
	Owner       string
	Website     string
	City        string
	Address     string
	Description string

	// Row is the 1-based position in the source export, used for
	// deterministic tie-breaks and for naming rows in issues.
	Row int
}

// Contact is one row of the Contacts export. AccountRef is a foreign key
// into Account.ID.
type Contact struct {
	ID         string
	AccountRef string
	Name       string
	Title      string
	Email      string
	Phone      string

	// Primary is the declared primary-contact flag from the export.
	Primary bool

	Row int
}

// PrimaryAssignment maps an account ID to its chosen primary contact ID.
// At most one entry per account; accounts with no valid contact are absent.
type PrimaryAssignment map[string]string

// Status is the state of a generated meeting.
type Status string

const (
	StatusProposed    Status = "Proposed"
	StatusTentative   Status = "Tentative"
	StatusConfirmed   Status = "Confirmed"
	StatusRescheduled Status = "Rescheduled"
	StatusCancelled   Status = "Cancelled"
	StatusDone        Status = "Done"
)

// DefaultStatuses is the candidate set the generator draws from when the
// trip config does not override it.
func DefaultStatuses() []Status {
	return []Status{
		StatusProposed,
		StatusTentative,
		StatusConfirmed,
		StatusRescheduled,
		StatusCancelled,
		StatusDone,
	}
}

// Meeting is one generated meeting. Date is always within the trip range,
// inclusive of both boundaries.
type Meeting struct {
	AccountID string
	Date      time.Time
	Time      string
	Address   string
	Owner     string
	Status    Status
}

// TripConfig carries the scheduling parameters for one pipeline run.
type TripConfig struct {
	TripName string
	City     string

	TripStart time.Time
	TripEnd   time.Time

	// Seed fixes the pseudo-random sequence. All-digit strings are used as
	// the integer seed directly, anything else is hashed.
	Seed string

	// Owners are rotated onto meetings whose account has no owner of its own.
	Owners []string

	// TimeSlots and Statuses override the generator's candidate sets when
	// non-empty.
	TimeSlots []string
	Statuses  []Status

	// AddressPlaceholder is used when an account has no address context.
	AddressPlaceholder string
}

// RunMeta describes one pipeline invocation for the Trip Overview table.
type RunMeta struct {
	Trip       TripConfig
	RunID      string
	Timestamp  time.Time
	SeedUsed   uint64
	AccountsIn int
	ContactsIn int
	Log        []string
}
