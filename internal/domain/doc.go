// Package domain defines core data models and interfaces shared across the app.
// It contains plain value types (records, issues, report tables) and contracts
// (interfaces) only.
package domain
