// Package orbit generates every admissible jump sequence of a given length:
// ordered sequences over {-1, 0, +1} that sum to zero and contain at most
// one zero, visited exactly once in a fixed enumeration order.
//
// 🚀 What is orbit?
//
//	The generation engine behind orbital drawing: each sequence is a
//	closed path on the integer line ("orbital"), and the renderer — or
//	any other consumer — receives them one by one through a hook.
//
// ✨ Key features:
//   - exhaustive & unique: every admissible sequence exactly once
//   - deterministic order, driven by combin's Algorithm L enumerator
//   - per-sequence hook with a textual-dump default (WithOnSequence)
//   - fail-soft length clamp: out-of-range lengths fall back to
//     MinLength with a diagnostic, never a panic or abort
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/orbitals/orbit"
//
//	g := orbit.New(4, orbit.WithOnSequence(func(seq []int) {
//	  fmt.Println(seq) // seq is reused; copy it to retain
//	}))
//	total := g.Generate() // 6 for length 4
//
// Counting identity: even n yields C(n, n/2) sequences; odd n yields
// C(n-1, (n-1)/2) · n (one zero spliced at each of the n positions).
//
// Complexity: O(total · n) time, O(n) memory per generator.
package orbit
