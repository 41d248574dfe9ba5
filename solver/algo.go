// SPDX-License-Identifier: MIT

// Package solver - closed Algo and Initial enumerations.
package solver

import (
	"fmt"
	"strings"
)

// Algo selects the driver.
type Algo uint8

const (
	// MSLS is multi-start local search.
	MSLS Algo = iota
	// ILS is iterated local search.
	ILS
	// LNS is large neighbourhood search with local search after repair.
	LNS
	// LNSa is large neighbourhood search without local search after repair.
	LNSa
	// HAE is the hybrid evolutionary algorithm.
	HAE
)

var algoNames = [...]string{
	MSLS: "msls",
	ILS:  "ils",
	LNS:  "lns",
	LNSa: "lnsa",
	HAE:  "hae",
}

// Algos lists every driver in declaration order.
func Algos() []Algo { return []Algo{MSLS, ILS, LNS, LNSa, HAE} }

// String returns the stable lower-case name.
func (a Algo) String() string {
	if int(a) < len(algoNames) {
		return algoNames[a]
	}
	return "unknown"
}

// Timed reports whether a is stopped by TimeLimit rather than Iterations.
func (a Algo) Timed() bool { return a != MSLS }

// MarshalText implements encoding.TextMarshaler.
func (a Algo) MarshalText() ([]byte, error) {
	if int(a) >= len(algoNames) {
		return nil, fmt.Errorf("%d: %w", a, ErrUnknownAlgo)
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algo) UnmarshalText(b []byte) error {
	v, err := ParseAlgo(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAlgo is the case-insensitive inverse of String.
func ParseAlgo(s string) (Algo, error) {
	for i, name := range algoNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Algo(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownAlgo)
}

// Initial selects the starting solution of ILS, LNS and LNSa.
type Initial uint8

const (
	// InitialRandom starts from a uniformly random partition.
	InitialRandom Initial = iota
	// InitialWeightedRegret starts from the weighted-regret construction.
	InitialWeightedRegret
)

var initialNames = [...]string{
	InitialRandom:         "random",
	InitialWeightedRegret: "weighted-regret",
}

// String returns the stable name.
func (i Initial) String() string {
	if int(i) < len(initialNames) {
		return initialNames[i]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (i Initial) MarshalText() ([]byte, error) {
	if int(i) >= len(initialNames) {
		return nil, fmt.Errorf("%d: %w", i, ErrUnknownInitial)
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Initial) UnmarshalText(b []byte) error {
	v, err := ParseInitial(string(b))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// ParseInitial is the case-insensitive inverse of String.
func ParseInitial(s string) (Initial, error) {
	for i, name := range initialNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Initial(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownInitial)
}
