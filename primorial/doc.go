// Package primorial ranks jump sequences by their prime-product "balance",
// producing the full enumeration of a length in ascending primorial order.
//
// 🚀 What is primorial order?
//
//	Each position i of a sequence is assigned the i-th prime (2, 3, 5, …).
//	Positions holding +1 multiply the numerator, positions holding -1 the
//	denominator, and a zero consumes its prime without touching either.
//	The resulting ratio — the balance — is the sole ranking key: sorting
//	all sequences of one length ascending by balance yields the primorial
//	order.
//
// ✨ Key features:
//   - Weigh computes (numerator, denominator, balance) for one sequence
//   - Ranked wraps the orbit generator and keeps every weighted orbital
//     in a collection sorted at every step (stable: ties keep arrival
//     order)
//   - Write renders the ranked listing as "jumps = num/den ≈ balance"
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/orbitals/primorial"
//
//	r := primorial.NewRanked(4)
//	orbitals, err := r.Generate()
//	if err != nil { ... }
//	_ = r.Write(os.Stdout)
//
// Weighing a sequence longer than the prime table fails hard with
// ErrTableExhausted — a truncated ratio would corrupt the ranking
// silently, so there is no fail-soft path here.
//
// Complexity: O(total·n) to weigh, O(total²) worst-case insertion; both
// bounded by the orbit length limit (total ≤ 2772 for length ≤ 12).
package primorial
