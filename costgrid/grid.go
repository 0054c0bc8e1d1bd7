// Package costgrid represents a static 2D cost surface together with
// the cardinal-movement primitives used to traverse it. It supports:
//
//   - Construction from an integer matrix with full validation
//   - Parsing from ASCII digit rows (one row per line)
//   - O(1) bounds, cost and single-step neighbor queries
//
// A Grid is immutable once built and may be shared read-only across
// any number of concurrently running queries.
package costgrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Grid is an immutable rectangular array of non-negative per-cell
// traversal costs. Construct one with New, Parse or ParseReader;
// the zero value is not usable.
type Grid struct {
	rows, cols int
	cells      [][]int
}

// New constructs a Grid from a non-empty, rectangular 2D slice of
// non-negative costs. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNegativeCost if
// any cell is below zero.
// Complexity: O(rows×cols) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	// Deep copy to prevent external mutation, validating as we go.
	cells := make([][]int, rows)
	for r := 0; r < rows; r++ {
		if len(values[r]) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(values[r]), cols)
		}
		cells[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			if values[r][c] < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %d", ErrNegativeCost, r, c, values[r][c])
			}
			cells[r][c] = values[r][c]
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Parse builds a Grid from a string of ASCII digit rows, one row per
// line. Each character's numeric value (0–9) becomes that cell's
// traversal cost. A single trailing newline is tolerated.
// Returns ErrEmptyGrid for empty input, ErrNonDigit for any character
// outside '0'–'9', and ErrNonRectangular for ragged rows; no partial
// grid is ever returned.
// Complexity: O(rows×cols).
func Parse(s string) (*Grid, error) {
	return ParseReader(strings.NewReader(s))
}

// ParseReader is Parse for an io.Reader source, reading line by line.
// Complexity: O(rows×cols).
func ParseReader(r io.Reader) (*Grid, error) {
	var values [][]int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		row := make([]int, 0, len(line))
		for col, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrNonDigit, ch, len(values), col)
			}
			row = append(row, int(ch-'0'))
		}
		values = append(values, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("costgrid: reading grid: %w", err)
	}

	// New re-validates shape, catching empty input and ragged rows.
	return New(values)
}

// Bounds returns the grid dimensions as (rows, cols).
// Complexity: O(1).
func (g *Grid) Bounds() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether loc lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < g.rows && loc.Col >= 0 && loc.Col < g.cols
}

// Cost returns the traversal cost of the cell at loc. Callers must
// check bounds first: an out-of-bounds loc panics, as that is a
// programming bug rather than a recoverable condition.
// Complexity: O(1).
func (g *Grid) Cost(loc Location) int {
	return g.cells[loc.Row][loc.Col]
}

// Step returns the neighboring location one cell away in the given
// heading, with ok=false if that step would leave the grid.
// North decreases the row, South increases it; East increases the
// column, West decreases it.
// Complexity: O(1).
func (g *Grid) Step(loc Location, hd Heading) (Location, bool) {
	next := loc
	switch hd {
	case North:
		next.Row--
	case South:
		next.Row++
	case East:
		next.Col++
	case West:
		next.Col--
	default:
		// A heading outside the alphabet must never alias "stay put".
		return Location{}, false
	}
	if !g.InBounds(next) {
		return Location{}, false
	}

	return next, true
}

// TopLeft returns the conventional origin corner (0,0).
func (g *Grid) TopLeft() Location {
	return Location{Row: 0, Col: 0}
}

// BottomRight returns the conventional destination corner
// (rows−1, cols−1).
func (g *Grid) BottomRight() Location {
	return Location{Row: g.rows - 1, Col: g.cols - 1}
}
