// Package gridpath is your in-memory toolkit for minimum-cost routing
// over dense digit grids — from cost-surface primitives to a
// run-constrained best-first search engine.
//
// 🚀 What is gridpath?
//
//	A compact library that brings together:
//		• Cost surfaces: immutable rectangular grids of per-cell costs
//		• Digit parsing: ASCII digit rows → validated cost grids
//		• Headings: the four cardinal directions with pure left/right rotation
//		• Run-constrained routing: minimum straight run before a turn,
//		  maximum straight run before a forced turn
//		• Best-first search with dominance pruning over the augmented
//		  (location, heading, run-length) state space
//
// ✨ Why choose gridpath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable grids, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden runtime deps
//   - Tunable – functional options for origin, destination and budgets
//
// Under the hood, everything is organized under two subpackages:
//
//	costgrid/ — Grid, Location and Heading primitives + digit parsing
//	runpath/  — the run-constrained minimum-cost search engine
//
// Quick ASCII example:
//
//	    241
//	    321
//	    325
//
//	is a 3×3 cost surface; the cheapest route from the top-left to the
//	bottom-right corner under a maximum straight run of 3 costs 11.
//
// Dive into README.md and examples/ for full programs, and into each
// subpackage's doc.go for the algorithmic details.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
