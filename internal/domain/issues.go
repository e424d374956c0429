package domain

// Severity classifies how badly a data issue affects a record.
type Severity string

const (
	// SeverityBlocker marks a record that cannot be safely used as-is.
	SeverityBlocker Severity = "BLOCKER"
	// SeverityWarning marks a defect that should be reviewed but does not
	// stop processing.
	SeverityWarning Severity = "WARNING"
)

// Entity names the kind of record an issue is about.
type Entity string

const (
	EntityAccount Entity = "account"
	EntityContact Entity = "contact"
)

// DataIssue is one validation or resolution finding. Issues are created
// once and accumulated; they are never mutated afterwards.
type DataIssue struct {
	Severity     Severity
	Entity       Entity
	EntityID     string
	Field        string
	Message      string
	SuggestedFix string
}

// CountBySeverity tallies blockers and warnings in one pass.
func CountBySeverity(issues []DataIssue) (blockers, warnings int) {
	for _, is := range issues {
		switch is.Severity {
		case SeverityBlocker:
			blockers++
		case SeverityWarning:
			warnings++
		}
	}
	return blockers, warnings
}
