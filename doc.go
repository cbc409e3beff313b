// Package orbitals enumerates and ranks "orbitals" — closed lattice paths
// encoded as sequences of unit jumps {-1, 0, +1} that sum to zero.
//
// 🚀 What is orbitals?
//
//	A small, deterministic combinatorics library that brings together:
//		• combin/    — Knuth's Algorithm L combination enumerator (TAOCP 7.2.1.3)
//		• orbit/     — jump-sequence generation with visitor hooks
//		• primes/    — the shared immutable prime table
//		• primorial/ — prime-product weights and "primorial order" ranking
//
// ✨ Why choose orbitals?
//
//   - Exhaustive & unique – every admissible sequence exactly once, in a
//     fixed, reproducible enumeration order
//   - Hook-friendly – inject your own per-sequence callback, or let the
//     generator dump sequences as text
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example (length 4, enumeration order):
//
//	[ 1  1 -1 -1]   up, up, down, down
//	[ 1 -1  1 -1]   up, down, up, down
//	 ...
//	[-1 -1  1  1]   down, down, up, up
//
// Every sequence sums to zero: each one is a closed path on the integer line.
// The primorial package ranks the same sequences by the ratio of prime
// products over their positive and negative positions.
//
//	go get github.com/katalvlaran/orbitals
package orbitals
