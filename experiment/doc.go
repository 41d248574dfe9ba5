// SPDX-License-Identifier: MIT

// Package experiment runs batches of independent solver trials and
// summarizes them.
//
// Run executes one configuration for a number of trials on a bounded
// goroutine pool. Trial i uses seed solver.DeriveSeed(opts.Seed, i) and its
// result is stored at index i, so a batch is reproducible whatever the
// worker count. Every result is re-validated (partition invariant and cost
// recomputation) before it is summarized.
//
// Suite reproduces the comparison protocol of the drivers: MSLS runs first
// and its mean wall time becomes the time limit of ILS, LNS, LNSa, HAE+LS and
// HAE, so that every timed driver gets the same budget.
package experiment
