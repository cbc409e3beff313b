// Package combin enumerates all t-element subsets of {0, …, n-1} using
// Knuth's Algorithm L (TAOCP 7.2.1.3), visiting each subset exactly once
// in a fixed, reproducible order.
//
// 🚀 What is combin?
//
//	The combinatorial substrate for orbital generation: the orbit package
//	maps each emitted subset to the positions of the -1 jumps in a
//	sequence.  The enumerator is usable on its own wherever a
//	deterministic subset order is needed.
//
// ✨ Key features:
//   - visitor-driven: Enumerate(n, t, visit) calls visit once per subset
//   - abortable: a non-nil error from visit stops the run and propagates
//   - colex visiting order: subsets appear ordered by their reversed
//     tuples, e.g. n=4, t=2 yields {0,1} {0,2} {1,2} {0,3} {1,3} {2,3}
//   - All(n, t) materializes the enumeration, Count(n, t) = C(n,t)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/orbitals/combin"
//
//	err := combin.Enumerate(5, 2, func(comb []int) error {
//	  fmt.Println(comb) // comb is reused; copy it to retain
//	  return nil
//	})
//
// Complexity: O(C(n,t)·t) time, O(t) memory.
package combin
