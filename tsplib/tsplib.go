// SPDX-License-Identifier: MIT

// Package tsplib reads TSPLIB coordinate instances (EUC_2D and CEIL_2D) and
// turns them into integer distance matrices.
//
// It is the instance provider of the command-line tool and the HTTP server;
// the optimization packages only see distance.Matrix.
//
// Format:
//
//	NAME : kroA100
//	DIMENSION : 100
//	EDGE_WEIGHT_TYPE : EUC_2D
//	NODE_COORD_SECTION
//	1 1380 939
//	...
//	EOF
//
// EUC_2D distances are rounded with TSPLIB nint (⌊x + 0.5⌋), CEIL_2D
// distances are rounded up. Nodes are renumbered 0..n-1 in file order.
package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/twocycle/distance"
)

var (
	// ErrFormat is returned for malformed input.
	ErrFormat = errors.New("tsplib: malformed instance")

	// ErrUnsupported is returned for an EDGE_WEIGHT_TYPE other than EUC_2D or CEIL_2D.
	ErrUnsupported = errors.New("tsplib: unsupported edge weight type")
)

// Instance is a parsed coordinate instance with its distance matrix.
type Instance struct {
	Name           string
	EdgeWeightType string
	Points         [][2]float64
	Dense          *distance.Dense
}

var _ distance.Matrix = (*Instance)(nil)

// Len returns the number of nodes.
func (in *Instance) Len() int { return in.Dense.Len() }

// At returns the rounded distance between nodes i and j.
func (in *Instance) At(i, j int) int { return in.Dense.At(i, j) }

// Load opens and parses path.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads one instance from r. Keyword lines other than NAME,
// DIMENSION and EDGE_WEIGHT_TYPE are ignored; the coordinate section ends at
// the first line that is not "<id> <x> <y>".
//
// Complexity: O(n²) for the distance matrix.
func Parse(r io.Reader) (*Instance, error) {
	var (
		in        = &Instance{}
		dimension = -1
		inCoords  bool
		line      int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if text == "EOF" {
			break
		}
		if text == "NODE_COORD_SECTION" {
			inCoords = true
			continue
		}

		if inCoords {
			fields := strings.Fields(text)
			if len(fields) == 3 {
				if _, err := strconv.Atoi(fields[0]); err == nil {
					x, errX := strconv.ParseFloat(fields[1], 64)
					y, errY := strconv.ParseFloat(fields[2], 64)
					if errX != nil || errY != nil {
						return nil, fmt.Errorf("line %d: bad coordinates %q: %w", line, text, ErrFormat)
					}
					in.Points = append(in.Points, [2]float64{x, y})
					continue
				}
			}
			inCoords = false
		}

		key, value, ok := strings.Cut(text, ":")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		switch key {
		case "NAME":
			in.Name = value
		case "DIMENSION":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("line %d: dimension %q: %w", line, value, ErrFormat)
			}
			dimension = n
		case "EDGE_WEIGHT_TYPE":
			if value != "EUC_2D" && value != "CEIL_2D" {
				return nil, fmt.Errorf("%s: %w", value, ErrUnsupported)
			}
			in.EdgeWeightType = value
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	switch {
	case in.EdgeWeightType == "":
		return nil, fmt.Errorf("missing EDGE_WEIGHT_TYPE: %w", ErrFormat)
	case len(in.Points) == 0:
		return nil, fmt.Errorf("no coordinates: %w", ErrFormat)
	case dimension >= 0 && dimension != len(in.Points):
		return nil, fmt.Errorf("%d coordinates for dimension %d: %w", len(in.Points), dimension, ErrFormat)
	}

	d, err := FromPoints(in.Points, in.EdgeWeightType == "CEIL_2D")
	if err != nil {
		return nil, err
	}
	in.Dense = d

	return in, nil
}

// FromPoints builds the rounded Euclidean matrix of pts. ceil selects
// CEIL_2D rounding instead of nint.
func FromPoints(pts [][2]float64, ceil bool) (*distance.Dense, error) {
	var (
		n    = len(pts)
		rows = make([][]int, n)
		i, j int
		e    float64
		v    int
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]int, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			e = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			if ceil {
				v = int(math.Ceil(e))
			} else {
				v = int(math.Floor(e + 0.5))
			}
			rows[i][j], rows[j][i] = v, v
		}
	}

	return distance.NewDense(rows)
}
