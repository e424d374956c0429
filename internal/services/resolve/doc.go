// Package resolve selects one primary contact per account.
//
// The selection rule is a total order isolated in PrimaryLess so the
// business rule can be swapped without touching the resolver itself.
package resolve
