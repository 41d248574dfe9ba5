// SPDX-License-Identifier: MIT

// Package tune searches the weighted-regret score weights with the Mayfly
// continuous optimizer.
//
// The objective of a point (regret, greedy) is the cost of the weighted-regret
// construction seeded with construct.StartMaxPair. That start is
// deterministic, so the objective is a pure function of the weights and the
// search is reproducible from Config.Seed alone.
package tune
