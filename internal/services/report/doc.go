// Package report assembles the five output tables from already-computed
// facts. It performs no validation of its own and tolerates empty inputs,
// producing empty but well-formed tables.
package report
