// SPDX-License-Identifier: MIT

// Package search - Variant, the closed set of descent strategies.
package search

import (
	"fmt"
	"strings"
)

// Variant selects how Run picks the next improving move.
type Variant uint8

const (
	// CandidateSteepest applies the best move among those introducing an
	// edge to one of the k nearest neighbours of a vertex.
	CandidateSteepest Variant = iota
	// Steepest applies the best move of the full neighbourhood.
	Steepest
	// Greedy applies the first improving move of the full neighbourhood in
	// (kind, cycle, i, j) order.
	Greedy
	// MoveList keeps the improving moves of earlier steps in a list sorted
	// by delta and only re-evaluates moves around the last change.
	MoveList
)

var variantNames = [...]string{
	CandidateSteepest: "candidate",
	Steepest:          "steepest",
	Greedy:            "greedy",
	MoveList:          "move-list",
}

// Variants lists every variant in declaration order.
func Variants() []Variant { return []Variant{CandidateSteepest, Steepest, Greedy, MoveList} }

// String returns the stable name.
func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if int(v) >= len(variantNames) {
		return nil, fmt.Errorf("%d: %w", v, ErrUnknownVariant)
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(b []byte) error {
	p, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseVariant is the case-insensitive inverse of String.
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownVariant)
}
