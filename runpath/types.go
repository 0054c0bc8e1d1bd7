// Package runpath defines core types and configuration options
// for the run-constrained minimum-cost search engine.
//
// MinCost computes the cheapest route across a costgrid.Grid for an
// agent that must travel at least minRun consecutive cells in its
// current heading before it may turn, and at most maxRun consecutive
// cells before it is forced to turn. The search runs best-first over
// the augmented (location, heading, run-length) state space with
// dominance pruning.
//
// Options:
//
//	– Origin:        starting cell; defaults to the top-left corner.
//	– Destination:   target cell; defaults to the bottom-right corner.
//	– MaxExpansions: cap on frontier pops before the search aborts.
//	                 Default is math.MaxInt64 (unbounded).
//
// Errors (sentinel):
//
//	– ErrNilGrid                 if the provided grid pointer is nil.
//	– ErrRunBounds               if minRun < 0 or minRun > maxRun.
//	– ErrOriginOutOfBounds       if the origin lies outside the grid.
//	– ErrDestinationOutOfBounds  if the destination lies outside the grid.
//	– ErrNoPath                  if no route satisfies the run constraints.
//	– ErrBudgetExceeded          if MaxExpansions pops were exhausted.
package runpath

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/costgrid"
)

// Sentinel errors returned by the runpath engine.
var (
	// ErrNilGrid indicates that a nil *costgrid.Grid was passed to MinCost.
	ErrNilGrid = errors.New("runpath: grid is nil")

	// ErrRunBounds indicates an invalid (minRun, maxRun) pair:
	// minRun must be ≥ 0 and must not exceed maxRun.
	ErrRunBounds = errors.New("runpath: minRun must satisfy 0 ≤ minRun ≤ maxRun")

	// ErrOriginOutOfBounds indicates the configured origin lies outside
	// the grid.
	ErrOriginOutOfBounds = errors.New("runpath: origin out of grid bounds")

	// ErrDestinationOutOfBounds indicates the configured destination
	// lies outside the grid.
	ErrDestinationOutOfBounds = errors.New("runpath: destination out of grid bounds")

	// ErrNoPath indicates the frontier was exhausted without any state
	// satisfying the terminal condition. This is a first-class outcome,
	// not a failure of the engine: e.g. a 1×1 grid with minRun ≥ 1 can
	// never finish a run at the destination.
	ErrNoPath = errors.New("runpath: no route satisfies the run constraints")

	// ErrBudgetExceeded indicates the search hit the MaxExpansions cap
	// before draining the frontier.
	ErrBudgetExceeded = errors.New("runpath: expansion budget exceeded")

	// ErrBadMaxExpansions indicates WithMaxExpansions was given a value
	// below one.
	ErrBadMaxExpansions = errors.New("runpath: MaxExpansions must be positive")
)

// unset marks an Options corner as "use the grid's conventional corner".
// Any negative coordinate is out of bounds for every grid, so it can
// never collide with a caller-supplied location.
var unset = costgrid.Location{Row: -1, Col: -1}

// Options configures a single MinCost query.
//
// Origin        – starting cell. Defaults to the top-left corner.
// Destination   – target cell. Defaults to the bottom-right corner.
// MaxExpansions – upper bound on frontier pops before the engine gives
// up with ErrBudgetExceeded. Puzzle-scale grids never need it; it is a
// guard for adversarial or huge inputs. Default math.MaxInt64.
type Options struct {
	Origin        costgrid.Location
	Destination   costgrid.Location
	MaxExpansions int64
}

// Option represents a functional option for configuring MinCost.
type Option func(*Options)

// WithOrigin sets the starting cell of the route. The location must
// lie within the grid; MinCost validates it before the search starts.
func WithOrigin(loc costgrid.Location) Option {
	return func(o *Options) {
		o.Origin = loc
	}
}

// WithDestination sets the target cell of the route. The location must
// lie within the grid; MinCost validates it before the search starts.
func WithDestination(loc costgrid.Location) Option {
	return func(o *Options) {
		o.Destination = loc
	}
}

// WithMaxExpansions caps how many states the engine may pop from the
// frontier before aborting with ErrBudgetExceeded.
// Must pass a positive value; zero or negative panics with
// ErrBadMaxExpansions.
// Default (if not set) is math.MaxInt64 (no cap).
func WithMaxExpansions(n int64) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further functional-option
// overrides.
//
// Defaults:
//   - Origin:        top-left corner of the grid.
//   - Destination:   bottom-right corner of the grid.
//   - MaxExpansions: math.MaxInt64 (no expansion cap).
func DefaultOptions() Options {
	return Options{
		Origin:        unset,
		Destination:   unset,
		MaxExpansions: math.MaxInt64,
	}
}
