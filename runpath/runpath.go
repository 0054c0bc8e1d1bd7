// Package runpath implements run-constrained minimum-cost routing on a
// weighted digit grid.
//
// MinCost finds the cheapest route from an origin to a destination
// where the agent must move at least minRun consecutive cells in its
// current heading before it may turn, and at most maxRun consecutive
// cells before it must turn. Reversing is never a legal move, and the
// agent cannot stop at the destination mid-run: a route only counts as
// finished once its final straight run is at least minRun cells long.
//
// The search is best-first over (location, heading, run-length) states
// ordered by f = g + Manhattan(location, destination), with a
// dominance cache keyed by the full state triple. Because the engine
// records every terminal state and keeps draining the frontier until
// it is empty, the answer does not depend on first-pop optimality.
//
// Complexity, with V = rows×cols cells and R = maxRun:
//
//   - Time:  O(V·R · log(V·R)) — each of the O(V·4·R) augmented states
//     is pushed at most once per strict cost improvement, and every
//     heap operation costs O(log N).
//   - Space: O(V·R) for the dominance cache and the frontier.
package runpath

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/costgrid"
)

// MinCost computes the minimum total traversal cost from the origin to
// the destination of g under the given run constraints. The cost of a
// route is the sum of the costs of every cell entered; the origin cell
// itself is never charged.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. 0 ≤ minRun ≤ maxRun (ErrRunBounds).
//  3. The origin must lie within g (ErrOriginOutOfBounds).
//  4. The destination must lie within g (ErrDestinationOutOfBounds).
//
// Options customization:
//
//   - WithOrigin(loc):        route from loc instead of the top-left corner.
//   - WithDestination(loc):   route to loc instead of the bottom-right corner.
//   - WithMaxExpansions(n):   abort with ErrBudgetExceeded after n pops.
//
// Outcomes:
//
//   - (cost, nil) — the cheapest route costs cost.
//   - (0, ErrNoPath) — no route satisfies the run constraints; this is
//     an expected result, not an engine failure.
//   - (0, err) — validation failed or the expansion budget ran out.
//
// A Grid is read-only to the engine, so one grid may serve any number
// of concurrent MinCost calls; each call owns its frontier and cache
// exclusively.
func MinCost(g *costgrid.Grid, minRun, maxRun int, opts ...Option) (int64, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the grid pointer.
	if g == nil {
		return 0, ErrNilGrid
	}

	// 3) Validate the run bounds. Both halves are rejected before the
	//    frontier is seeded, so an invalid query never starts searching.
	if minRun < 0 || minRun > maxRun {
		return 0, fmt.Errorf("%w: got minRun=%d, maxRun=%d", ErrRunBounds, minRun, maxRun)
	}

	// 4) Resolve the conventional corners and validate both endpoints.
	if cfg.Origin == unset {
		cfg.Origin = g.TopLeft()
	}
	if cfg.Destination == unset {
		cfg.Destination = g.BottomRight()
	}
	if !g.InBounds(cfg.Origin) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOriginOutOfBounds, cfg.Origin.Row, cfg.Origin.Col)
	}
	if !g.InBounds(cfg.Destination) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrDestinationOutOfBounds, cfg.Destination.Row, cfg.Destination.Col)
	}

	// 5) Assemble the per-query state and run the expansion loop.
	//    Everything below is owned exclusively by this call.
	r := &runner{
		grid:    g,
		options: cfg,
		minRun:  minRun,
		maxRun:  maxRun,
		cache:   make(map[stateKey]int64),
		pq:      make(frontier, 0, 2),
	}
	r.init()
	if err := r.process(); err != nil {
		return 0, err
	}

	// 6) The frontier is drained; report the best terminal cost seen.
	if !r.found {
		return 0, ErrNoPath
	}

	return r.best, nil
}

// searchState is one node of the augmented search space: a grid cell,
// the heading the agent entered it with, the length of the current
// straight run, and the accumulated route cost g. States are values;
// the transition function builds new ones and never mutates old ones.
type searchState struct {
	loc costgrid.Location
	hd  costgrid.Heading
	run int
	g   int64
}

// stateKey is the dominance-cache key: the full (location, heading,
// run-length) triple. Dropping run from the key would be a smaller
// cache, but it is unsound under min-run semantics — at equal cost, a
// longer run is better when a turn is imminent (closer to satisfying
// minRun) and worse when the forced turn approaches (closer to maxRun),
// so neither state dominates the other.
type stateKey struct {
	loc costgrid.Location
	hd  costgrid.Heading
	run int
}

func (s searchState) key() stateKey {
	return stateKey{loc: s.loc, hd: s.hd, run: s.run}
}

// runner holds the mutable state for a single MinCost execution.
type runner struct {
	grid    *costgrid.Grid     // The input grid; read-only within the query.
	options Options            // Resolved configuration (endpoints, budget).
	minRun  int                // Minimum straight run before a turn is legal.
	maxRun  int                // Maximum straight run before a turn is forced.
	cache   map[stateKey]int64 // Best g recorded per (loc, heading, run) triple.
	pq      frontier           // Min-heap over f = g + Manhattan(loc, dest).
	seq     uint64             // Insertion counter; makes tie-breaking deterministic.
	popped  int64              // Frontier pops so far, checked against MaxExpansions.
	best    int64              // Cheapest terminal g seen so far.
	found   bool               // Whether any terminal state was seen.
}

// init seeds the frontier with the two origin states.
//
// The origin has no incoming heading to inherit, so the search starts
// with both East and South at run 0 and cost 0 — the two headings that
// point toward the conventional destination quadrant. run 0 is special:
// it marks a seed, the only states allowed to turn before completing a
// minimum run.
func (r *runner) init() {
	heap.Init(&r.pq)
	for _, hd := range []costgrid.Heading{costgrid.East, costgrid.South} {
		seed := searchState{loc: r.options.Origin, hd: hd, run: 0, g: 0}
		r.cache[seed.key()] = 0
		r.push(seed)
	}
}

// push records a frontier entry for s with priority f = g + h(loc).
// The insertion sequence number breaks f ties first-in-first-out, so
// two runs over the same inputs expand states in the same order.
func (r *runner) push(s searchState) {
	heap.Push(&r.pq, &frontierItem{
		state: s,
		f:     s.g + int64(s.loc.Manhattan(r.options.Destination)),
		seq:   r.seq,
	})
	r.seq++
}

// process is the core expansion loop: pop the lowest-f state, record
// it if terminal, expand its successors, and repeat until the frontier
// is empty.
//
// The loop deliberately does NOT return on the first terminal pop.
// Recording and draining matches the reference semantics of the
// dominance cache: the answer is the minimum over every terminal state
// the search ever reaches, which holds regardless of whether the
// heuristic ordering is consistent.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Enforce the optional expansion budget before popping.
		if r.popped >= r.options.MaxExpansions {
			return fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, r.popped)
		}
		r.popped++

		// 2) Pop the state with the lowest f = g + h.
		item := heap.Pop(&r.pq).(*frontierItem)
		s := item.state

		// 3) Skip stale entries (lazy decrease-key): a strictly better
		//    g for this exact triple was pushed after this entry was.
		if cached, ok := r.cache[s.key()]; ok && cached < s.g {
			continue
		}

		// 4) Terminal check: at the destination with the minimum run
		//    satisfied. A state at the destination with a short run is
		//    not finished — it may still continue straight — so it
		//    falls through to expansion either way.
		if s.loc == r.options.Destination && s.run >= r.minRun {
			if !r.found || s.g < r.best {
				r.best = s.g
				r.found = true
			}
		}

		// 5) Expand successors under the transition rules.
		r.expand(s)
	}

	return nil
}

// expand generates every legal successor of s and pushes those that
// are not dominated.
//
// Transition rules from (loc, hd, run):
//
//   - Continue: only while run < maxRun. One step along hd, run+1.
//   - Turn: only when run == 0 (a seed) or run ≥ minRun. One step
//     along hd.Left() or hd.Right(), run resets to 1.
//
// There is no reverse transition — Heading cannot even express one in
// a single rotation — and no stay-in-place transition. Every successor
// pays the cost of the cell it enters.
func (r *runner) expand(s searchState) {
	// Continue straight.
	if s.run < r.maxRun {
		if next, ok := r.grid.Step(s.loc, s.hd); ok {
			r.visit(searchState{
				loc: next,
				hd:  s.hd,
				run: s.run + 1,
				g:   s.g + int64(r.grid.Cost(next)),
			})
		}
	}

	// Turn left or right. A turn starts a fresh run of length 1, so it
	// is only expressible at all when maxRun admits a run that long.
	if (s.run == 0 || s.run >= r.minRun) && r.maxRun >= 1 {
		for _, hd := range []costgrid.Heading{s.hd.Left(), s.hd.Right()} {
			if next, ok := r.grid.Step(s.loc, hd); ok {
				r.visit(searchState{
					loc: next,
					hd:  hd,
					run: 1,
					g:   s.g + int64(r.grid.Cost(next)),
				})
			}
		}
	}
}

// visit applies dominance pruning to a freshly built successor: it is
// pushed only if its g strictly improves on the best recorded for the
// same (location, heading, run) triple.
func (r *runner) visit(s searchState) {
	if cached, ok := r.cache[s.key()]; ok && s.g >= cached {
		return
	}
	r.cache[s.key()] = s.g
	r.push(s)
}

// frontierItem pairs a search state with its cached priority and an
// insertion sequence number for deterministic tie-breaking.
type frontierItem struct {
	state searchState
	f     int64  // g + Manhattan distance to the destination
	seq   uint64 // insertion order, breaks equal-f ties
}

// frontier is a min-heap (priority queue) of *frontierItem ordered by
// f ascending, then by insertion order. We use the lazy-decrease-key
// approach: improved duplicates are pushed and outdated entries are
// skipped on pop via the dominance cache.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less defines the comparison: smaller f → higher priority; equal f
// falls back to earlier insertion.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the lowest-priority element.
// Called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
