// SPDX-License-Identifier: MIT

// Package perturb provides the two perturbation operators of the
// single-trajectory drivers:
//   - Small: n random valid moves with no cost filter (ILS);
//   - Large: destroy a fraction of the vertices, proportionally from each
//     cycle, leaving a solution.Partial for a repair heuristic (LNS, LNSa).
//
// Both operators mutate their input; callers Clone the incumbent first.
package perturb
