// Package export implements the Exporter capability: writers that take the
// assembled five-table report and serialize it to a destination. The core
// pipeline only sees the domain.Exporter interface, so destinations can be
// swapped without touching it.
package export
