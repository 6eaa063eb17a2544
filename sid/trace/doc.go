// Package trace samples effect-modulated voice parameters against a
// simulated clock and summarizes the result.
//
// A trace is a diagnostic view of how a parameter moves over time. It is
// not an audio renderer: each sample is one parameter read.
package trace
