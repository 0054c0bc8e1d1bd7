// Package runpath provides a precise implementation of run-constrained
// minimum-cost routing over a static digit grid.
//
// Overview:
//
//   - MinCost computes the cheapest route from an origin to a
//     destination over a costgrid.Grid, for an agent that must travel
//     at least minRun consecutive cells in one heading before it may
//     turn, and at most maxRun cells before it is forced to turn.
//   - Movement is cardinal only; reversing is structurally impossible
//     (costgrid.Heading has no opposite operation), and a route only
//     finishes once its final straight run reaches minRun cells.
//   - The cost of a route is the sum of the costs of every cell
//     entered; the origin cell is never charged.
//
// When to use:
//
//   - Routing problems where momentum or turning-radius rules make the
//     plain cell-by-cell shortest path illegal: minimum straight runs
//     before a corner, forced turns after long straights.
//   - With minRun=0 and a large maxRun the engine degenerates to
//     ordinary cheapest-path routing over the grid.
//
// Algorithm:
//
//   - Best-first search over the augmented state space
//     (location, heading, run-length), ordered by
//     f = g + Manhattan(location, destination). The Manhattan term
//     never overstates the true remaining cost while cell costs are
//     ≥ 1, and stays a valid (looser) lower bound when 0-cost cells
//     are present.
//   - A dominance cache keyed by the full state triple discards any
//     successor whose accumulated cost fails to strictly improve on
//     the best already recorded for that exact triple. Keying by the
//     coarser (location, heading) pair would save memory but is
//     unsound under min-run semantics; see the stateKey documentation.
//   - The engine records every terminal state and keeps draining the
//     frontier until it is empty, so the reported minimum never
//     depends on first-pop optimality.
//
// Performance and complexity, with V = rows×cols and R = maxRun:
//
//   - Time:  O(V·R·log(V·R)) — at most 4·R augmented states per cell,
//     each pushed once per strict cost improvement.
//   - Space: O(V·R) for the cache plus the frontier under lazy
//     decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:                nil grid pointer.
//   - ErrRunBounds:              minRun < 0 or minRun > maxRun.
//   - ErrOriginOutOfBounds:      origin outside the grid.
//   - ErrDestinationOutOfBounds: destination outside the grid.
//   - ErrNoPath:                 frontier drained with no terminal
//     state; an expected outcome (e.g. a 1×1 grid with minRun ≥ 1),
//     not an engine failure.
//   - ErrBudgetExceeded:         the WithMaxExpansions cap ran out.
//   - ErrBadMaxExpansions:       (via panic) WithMaxExpansions ≤ 0.
//
// Thread safety:
//
//   - A Grid is read-only to the engine, so one grid may be shared by
//     any number of concurrent MinCost calls with no synchronization;
//     every call owns its frontier and dominance cache exclusively.
//
// API reference:
//
//	func MinCost(
//	    g *costgrid.Grid,
//	    minRun, maxRun int,
//	    opts ...Option,
//	) (int64, error)
//
//	  - g:       the cost surface, from costgrid.New or costgrid.Parse.
//	  - minRun:  minimum straight run before a turn (≥ 0).
//	  - maxRun:  maximum straight run before the turn is forced (≥ minRun).
//	  - opts:    zero or more functional options:
//	      • WithOrigin(loc):       start at loc (default top-left corner).
//	      • WithDestination(loc):  finish at loc (default bottom-right corner).
//	      • WithMaxExpansions(n):  abort after n frontier pops.
//
// See also:
//
//   - costgrid: Grid construction, digit parsing, Location and Heading
//     primitives.
package runpath
