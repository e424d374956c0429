// Package app wires application dependencies and runs the pipeline.
//
// It builds the concrete services and exporter from Config, exposing them
// via the Wire struct, and drives the synchronous validate → resolve →
// schedule → assemble → export flow for one invocation.
package app
