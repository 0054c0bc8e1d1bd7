// Package costgrid provides the static cost surface and cardinal
// movement primitives underlying the gridpath routing engine.
//
// Overview:
//
//   - Grid is an immutable rows×cols array of non-negative integer
//     traversal costs, built from an integer matrix (New) or parsed
//     from ASCII digit rows (Parse / ParseReader).
//   - Location is a (row, col) pair; Grid answers InBounds, Cost and
//     single-step neighbor queries in O(1).
//   - Heading is the four-direction movement alphabet {North, East,
//     South, West}, rotating only via Left and Right.
//
// Design notes:
//
//   - Immutability: New deep-copies its input, so a Grid can never be
//     mutated through the slice the caller built it from. One Grid may
//     therefore be shared read-only across concurrent queries with no
//     synchronization.
//   - No reversal: Heading intentionally has no Opposite method. Left
//     and Right form a closed 4-cycle, and composing either with
//     itself is the only way to face backward — two turns, never one.
//     Movement rules that forbid reversing are thereby enforced by the
//     type's shape, not by runtime checks.
//   - Panics vs errors: construction and parsing return sentinel
//     errors for malformed input, while Cost panics on out-of-bounds
//     access. An unchecked index is a caller bug; Step is the
//     bounds-checked way to move.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyGrid:       input with zero rows or zero columns.
//   - ErrNonRectangular:  rows of differing lengths.
//   - ErrNegativeCost:    a cell value below zero.
//   - ErrNonDigit:        a parsed character outside '0'–'9'.
//
// All are wrapped with positional context via fmt.Errorf("%w: ...");
// test with errors.Is.
//
// Complexity:
//
//   - New / Parse / ParseReader: O(rows×cols) time and memory.
//   - Bounds, InBounds, Cost, Step, Manhattan: O(1).
//
// See also:
//
//   - runpath: the run-constrained minimum-cost search engine that
//     consumes a Grid.
package costgrid
