package domain

// Validator scans the raw record sets for field-level defects. It never
// mutates or guesses values; records carrying blockers are excluded from
// the cleaned sets.
type Validator interface {
	Validate(accounts []Account, contacts []Contact) (cleanAccounts []Account, cleanContacts []Contact, issues []DataIssue)
}

// ContactResolver selects exactly one primary contact per account that has
// at least one valid contact.
type ContactResolver interface {
	Resolve(accounts []Account, contacts []Contact) (PrimaryAssignment, []DataIssue)
}

// ScheduleGenerator produces one meeting per account with a resolved
// primary, reproducibly for a fixed seed. It returns a ConfigError for
// invalid scheduling parameters.
type ScheduleGenerator interface {
	Generate(accounts []Account, primary PrimaryAssignment, cfg TripConfig) ([]Meeting, error)
}

// ReportAssembler reshapes already-computed facts into the five output
// tables. It performs no new validation.
type ReportAssembler interface {
	Assemble(accounts []Account, contacts []Contact, primary PrimaryAssignment, meetings []Meeting, issues []DataIssue, meta RunMeta) Report
}

// Exporter writes an assembled report to some destination. File naming,
// styling and storage medium are its exclusive concern.
type Exporter interface {
	Export(r Report) error
}
