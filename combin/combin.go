// Package combin provides the Algorithm L combination enumerator together
// with its sentinel errors and counting helper.
package combin

import (
	"errors"
	"fmt"
)

// Sentinel errors for enumeration.
var (
	// ErrInvalidArgs indicates n < 0, t < 0, or t > n.
	ErrInvalidArgs = errors.New("combin: arguments must satisfy 0 ≤ t ≤ n")

	// ErrNilVisit indicates a nil visitor was supplied.
	ErrNilVisit = errors.New("combin: visit function must not be nil")
)

// Enumerate visits every t-element subset of {0, …, n-1} exactly once,
// in Algorithm L order, calling visit with the subset as a strictly
// increasing index slice.
//
// The slice passed to visit is reused between calls; visitors that retain
// it must copy. A non-nil error from visit aborts the enumeration and is
// returned wrapped.
//
// Algorithm L (Knuth, TAOCP 7.2.1.3) keeps a 1-indexed workspace
// c[1..t] holding the current combination, with two sentinels
// c[t+1] = n and c[t+2] = 0 so the advance scan needs no bounds checks:
//
//  1. Initialize c[i] = i-1 (the lexicographically first combination).
//  2. Visit c[1..t].
//  3. Scan for the smallest j with c[j]+1 == c[j+1], resetting each
//     scanned position to its minimal value c[j] = j-1.
//  4. If j > t the enumeration is complete; otherwise increment c[j]
//     and return to step 2.
func Enumerate(n, t int, visit func(comb []int) error) error {
	if visit == nil {
		return ErrNilVisit
	}
	if n < 0 || t < 0 || t > n {
		return fmt.Errorf("%w: n=%d, t=%d", ErrInvalidArgs, n, t)
	}

	// Workspace: c[1..t] current combination, c[t+1], c[t+2] sentinels.
	c := make([]int, t+3)
	for i := 1; i <= t; i++ {
		c[i] = i - 1
	}
	c[t+1] = n
	c[t+2] = 0

	out := make([]int, t)
	var j int
	for {
		copy(out, c[1:t+1])
		if err := visit(out); err != nil {
			return fmt.Errorf("combin: visit error at %v: %w", out, err)
		}

		// Advance: find the smallest j whose slot can move up, resetting
		// every saturated position below it.
		j = 1
		for c[j]+1 == c[j+1] {
			c[j] = j - 1
			j++
		}
		if j > t {
			return nil
		}
		c[j]++
	}
}

// All materializes the full Algorithm L enumeration as a slice of
// freshly allocated subsets, in visiting order.
func All(n, t int) ([][]int, error) {
	combs := make([][]int, 0, int(Count(n, t)))
	err := Enumerate(n, t, func(comb []int) error {
		combs = append(combs, append([]int(nil), comb...))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return combs, nil
}

// Count returns the binomial coefficient C(n,t), or 0 when the
// arguments are out of range. Uses the multiplicative formula with
// division at every step, so intermediate values stay exact for the
// small n this module works with.
func Count(n, t int) int64 {
	if n < 0 || t < 0 || t > n {
		return 0
	}
	if t > n-t {
		t = n - t // C(n,t) == C(n,n-t); fewer iterations
	}
	result := int64(1)
	for i := 1; i <= t; i++ {
		result = result * int64(n-t+i) / int64(i)
	}
	return result
}
