// Package commands defines the triptracker CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - generate  Run the full pipeline and export the five-table report
//   - check     Validate the exports and print data issues without scheduling
//
// # Implementation
//
// Shared trip flags live on the root command; each subcommand assembles an
// app.Config (command line over YAML trip file over defaults), builds the
// dependency graph via app.NewWire, and runs the pipeline.
package commands
