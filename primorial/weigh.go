package primorial

import (
	"fmt"

	"github.com/katalvlaran/orbitals/primes"
)

// Weigh computes the primorial weight of one jump sequence.
//
// Position i consumes the i-th prime: a positive jump multiplies the
// numerator, a negative jump the denominator, and a zero multiplies
// neither (the prime is still consumed). Balance is the real-valued
// ratio of the two products.
//
// Returns ErrTableExhausted when the sequence is longer than the shared
// prime table; the result is never truncated.
func Weigh(seq []int) (Orbital, error) {
	ps, err := primes.First(len(seq))
	if err != nil {
		return Orbital{}, fmt.Errorf("%w: length %d, table size %d",
			ErrTableExhausted, len(seq), primes.Size())
	}

	o := Orbital{
		Jumps:       append([]int(nil), seq...),
		Numerator:   1,
		Denominator: 1,
	}
	for i, v := range seq {
		switch {
		case v > 0:
			o.Numerator *= ps[i]
		case v < 0:
			o.Denominator *= ps[i]
		}
	}
	o.Balance = float64(o.Numerator) / float64(o.Denominator)

	return o, nil
}
