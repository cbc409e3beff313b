// Package primes holds the single process-wide prime table shared by the
// orbital packages.
//
// The table is sized in lockstep with orbit.MaxLength: each position of a
// jump sequence consumes one prime, so the table must hold at least as many
// primes as the longest supported sequence. Raise the two together.
package primes

import (
	"errors"
	"fmt"
)

// ErrIndexRange indicates a prime index outside the fixed table.
var ErrIndexRange = errors.New("primes: index outside the fixed prime table")

// table lists the first primes in order; table[0] = 2. Read-only.
var table = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// Size returns the number of primes in the table.
func Size() int { return len(table) }

// Nth returns the i-th prime (0-based: Nth(0) = 2).
// Returns ErrIndexRange when i is negative or beyond the table.
func Nth(i int) (uint64, error) {
	if i < 0 || i >= len(table) {
		return 0, fmt.Errorf("%w: index %d, table size %d", ErrIndexRange, i, len(table))
	}
	return table[i], nil
}

// First returns a fresh slice holding the first k primes.
// Returns ErrIndexRange when k is negative or exceeds the table.
func First(k int) ([]uint64, error) {
	if k < 0 || k > len(table) {
		return nil, fmt.Errorf("%w: requested %d primes, table size %d", ErrIndexRange, k, len(table))
	}
	return append([]uint64(nil), table[:k]...), nil
}
