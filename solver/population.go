// SPDX-License-Identifier: MIT

// Package solver - HAE elitist population with a cost-separation gate.
package solver

import "github.com/katalvlaran/twocycle/solution"

// member is one population slot.
type member struct {
	s    *solution.Solution
	cost int
}

// population is a fixed-size pool. Members entering through offer keep at
// least minDiff from every other member; crowded members left over from
// initialization only ever leave it. Slots are replaced one at a time and
// never resized. Solutions
// stored here are never mutated, so readers may share them.
type population struct {
	members []member
	minDiff int
}

// admits reports whether cost keeps at least minDiff from every member.
//
// Complexity: O(len(members)).
func (p *population) admits(cost int) bool {
	for _, m := range p.members {
		diff := m.cost - cost
		if diff < 0 {
			diff = -diff
		}
		if diff < p.minDiff {
			return false
		}
	}
	return true
}

// add appends a member during initialization.
func (p *population) add(s *solution.Solution, cost int) {
	p.members = append(p.members, member{s: s, cost: cost})
}

// worst returns the slot with the highest cost, lowest slot on ties.
func (p *population) worst() int {
	w := 0
	for i, m := range p.members {
		if m.cost > p.members[w].cost {
			w = i
		}
	}
	return w
}

// best returns the member with the lowest cost, lowest slot on ties.
func (p *population) best() member {
	b := 0
	for i, m := range p.members {
		if m.cost < p.members[b].cost {
			b = i
		}
	}
	return p.members[b]
}

// offer applies the steady-state replacement rule: the child is dropped when
// it violates the separation gate, otherwise it overwrites the worst member
// iff it is strictly cheaper. It reports whether the child was eligible and
// whether it entered the population.
func (p *population) offer(s *solution.Solution, cost int) (eligible, replaced bool) {
	if !p.admits(cost) {
		return false, false
	}
	w := p.worst()
	if cost >= p.members[w].cost {
		return true, false
	}
	p.members[w] = member{s: s, cost: cost}
	return true, true
}

// costs returns the member costs in slot order.
func (p *population) costs() []int {
	out := make([]int, len(p.members))
	for i, m := range p.members {
		out[i] = m.cost
	}
	return out
}
