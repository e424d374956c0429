// Package validate scans the raw record sets for field-level defects.
//
// Every check produces zero or more typed issues without altering the
// source values. Records carrying a blocker are excluded from the cleaned
// sets; records with warnings are kept with the defective field left as-is.
package validate
