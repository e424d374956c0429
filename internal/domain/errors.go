package domain

import (
	"fmt"
	"strings"
)

// StructuralError reports an input whose shape cannot be interpreted at all,
// such as a missing required column. It is fatal: the pipeline aborts before
// validation runs and no partial report is produced.
type StructuralError struct {
	// Input names the record set, e.g. "accounts" or "contacts".
	Input string
	// Missing lists required columns absent from the header row.
	Missing []string
	// Reason is set instead of Missing when the file itself is unreadable.
	Reason string
}

func (e *StructuralError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%s export: missing required columns: %s (re-export from the CRM using the standard export)",
			e.Input, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("%s export: %s", e.Input, e.Reason)
}

// ConfigError reports an invalid scheduling parameter, such as a trip start
// after the trip end or an empty seed. It is fatal and reported before
// generation starts.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}
