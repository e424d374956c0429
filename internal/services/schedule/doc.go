// Package schedule generates the meeting list for a trip.
//
// All random choices come from a single PRNG fixed by the run seed and are
// drawn in canonical account order, so identical inputs always produce
// byte-identical meetings on any machine.
package schedule
