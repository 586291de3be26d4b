// Package dbsp is an in-memory core for incremental ("differential")
// stream processing in the style of database incremental view maintenance.
//
// 🚀 What is dbsp?
//
//	A small, pure-Go engine that models computations as circuits of
//	operators over time-indexed streams of Abelian-group values:
//		• Streams: timestamp-indexed, default-compressed sequences
//		• Operators: unary/binary bases + elementwise function lifting
//		• Circuits: Delay, Differentiate, Integrate — including feedback wiring
//		• Recursion: streams are themselves group values, so streams of
//		  streams (and their lifted operators) compose at any nesting depth
//		• Z-sets: weighted relations with a bilinear join, the classic
//		  consumers of the incremental machinery
//
// ✨ Why choose dbsp?
//
//   - Deterministic – single-threaded cooperative stepping, no hidden goroutines
//   - Algebraic – everything reduces to one capability: an Abelian group
//   - Explicit – callers drive circuits to fixpoint one Step() at a time
//   - Pure Go – no cgo, no I/O inside the core
//
// Under the hood, everything is organized under three subpackages:
//
//	abelian/ — the Group capability contract + ready-made numeric groups
//	stream/  — Stream, Handle, operator bases, lifting, linear circuits
//	zset/    — Z-sets, bilinear join, indexed Z-sets
//
// Quick sketch:
//
//	input:     0   3   5   2
//	Integrate: 0   3   8  10
//	Differentiate of that: 0   3   5   2
//
// Dive into each package's doc.go for the full contract, and the
// example tests for runnable walkthroughs.
//
//	go get github.com/katalvlaran/dbsp/stream
package dbsp
