// SPDX-License-Identifier: MIT

// Package construct builds complete two-cycle solutions from scratch and
// repairs partial ones.
//
// Heuristics:
//   - NearestNeighbor: grows both cycles as paths from two start vertices,
//     always appending the free vertex nearest to the active endpoint.
//   - GreedyCycle: seeds each cycle as a 2-vertex path and repeatedly performs
//     the cheapest insertion over both incomplete cycles.
//   - Regret: regret-2 and weighted-regret insertion over a solution.Partial.
//     Repair is the destroy/repair workhorse of LNS, LNSa and HAE.
//
// Start vertices come from a StartMode: farthest-from-random (default),
// two random vertices, or the globally farthest pair (deterministic).
//
// Determinism:
//
//	Every selection is resolved by explicit secondary keys (lower cost, then
//	lower vertex index, cycle A before B, lower position). Randomness only
//	enters through the *rand.Rand handed to Build, never global state.
//
// Complexity:
//
//	NearestNeighbor O(n²). GreedyCycle O(n³). Regret construction O(n³),
//	repair of k free vertices O(k²·n).
package construct
