// Package tabular reads the CRM exports into record sets and maps their
// header rows onto domain records.
//
// It is the structural boundary of the pipeline: a file that cannot be read,
// or whose header row lacks a required column, yields a
// domain.StructuralError before any validation runs. Data-level defects are
// not its concern and pass through untouched.
package tabular
