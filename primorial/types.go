// Package primorial defines the weighted-orbital value type and sentinel
// errors for primorial ranking.
package primorial

import (
	"errors"
	"fmt"
)

// ErrTableExhausted indicates a sequence longer than the shared prime
// table. The weight of such a sequence is undefined; truncating the
// table would corrupt the ranking silently, so this is a hard error.
var ErrTableExhausted = errors.New("primorial: prime table shorter than sequence")

// Orbital pairs a jump sequence with its primorial weight. Immutable
// once created: Jumps is an owned copy, never the generator's reused
// buffer.
type Orbital struct {
	// Jumps is the sequence this weight was derived from.
	Jumps []int

	// Numerator is the product of primes at +1 positions.
	Numerator uint64

	// Denominator is the product of primes at -1 positions.
	Denominator uint64

	// Balance is Numerator/Denominator as a real-valued ratio — the
	// ranking key. Never integer-truncated.
	Balance float64
}

// String renders the orbital as "jumps = num/den ≈ balance".
func (o Orbital) String() string {
	return fmt.Sprintf("%v = %d/%d ≈ %.4f", o.Jumps, o.Numerator, o.Denominator, o.Balance)
}
