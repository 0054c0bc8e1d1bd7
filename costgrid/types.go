// Package costgrid defines core types and sentinel errors
// for the costgrid subpackage of github.com/katalvlaran/gridpath.
package costgrid

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for costgrid construction and parsing.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("costgrid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("costgrid: all rows must have the same length")
	// ErrNegativeCost indicates a cell value below zero.
	ErrNegativeCost = errors.New("costgrid: cell costs must be non-negative")
	// ErrNonDigit indicates a character outside '0'–'9' in a parsed grid.
	ErrNonDigit = errors.New("costgrid: grid rows must contain only ASCII digits")
)

// Heading is one of the four cardinal movement directions.
//
// A Heading rotates only via Left and Right, each a pure total function
// on the closed 4-cycle North→East→South→West→North. There is
// deliberately no Opposite/Reverse method: a single rotation can never
// produce the opposite heading, so an illegal backward move is
// unrepresentable rather than merely checked at runtime.
type Heading uint8

const (
	// North decreases the row index.
	North Heading = iota
	// East increases the column index.
	East
	// South increases the row index.
	South
	// West decreases the column index.
	West

	// NumHeadings is the size of the heading alphabet, useful for
	// heading-indexed tables.
	NumHeadings = 4
)

// Left returns the heading after a 90° counter-clockwise rotation.
// Complexity: O(1).
func (h Heading) Left() Heading {
	return (h + 3) % NumHeadings
}

// Right returns the heading after a 90° clockwise rotation.
// Complexity: O(1).
func (h Heading) Right() Heading {
	return (h + 1) % NumHeadings
}

// String returns the conventional name of the heading.
func (h Heading) String() string {
	switch h {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Heading(?)"
	}
}

// Location identifies a single grid cell by (row, column).
// The zero value is the top-left corner of any grid.
type Location struct {
	Row, Col int
}

// Manhattan returns the L1 distance |Δrow| + |Δcol| between l and other.
// It is the admissible remaining-cost heuristic used by the runpath
// engine: with per-cell costs ≥ 1 it never exceeds the true remaining
// cost, and with 0-cost cells it degrades to a looser but still valid
// lower bound. Complexity: O(1).
func (l Location) Manhattan(other Location) int {
	return absDiff(l.Row, other.Row) + absDiff(l.Col, other.Col)
}

// absDiff returns |x−y| without converting through floats.
func absDiff[T constraints.Signed](x, y T) T {
	if x < y {
		return y - x
	}

	return x - y
}
