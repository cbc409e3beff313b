package primorial_test

import (
	"testing"

	"github.com/katalvlaran/orbitals/primorial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWeigh_Fixture verifies the documented fixture: (-1,-1,1,1) with
// primes (2,3,5,7) yields 35/6 ≈ 5.83.
func TestWeigh_Fixture(t *testing.T) {
	o, err := primorial.Weigh([]int{-1, -1, 1, 1})
	require.NoError(t, err)

	assert.EqualValues(t, 35, o.Numerator, "numerator = 5·7")
	assert.EqualValues(t, 6, o.Denominator, "denominator = 2·3")
	assert.InDelta(t, 35.0/6.0, o.Balance, 1e-12)
	assert.Equal(t, "[-1 -1 1 1] = 35/6 ≈ 5.8333", o.String())
}

// TestWeigh_ZeroConsumesPrime verifies a zero touches neither product but
// still advances the prime index: (1,0,-1) → 2/5, not 2/3.
func TestWeigh_ZeroConsumesPrime(t *testing.T) {
	o, err := primorial.Weigh([]int{1, 0, -1})
	require.NoError(t, err)

	assert.EqualValues(t, 2, o.Numerator)
	assert.EqualValues(t, 5, o.Denominator, "the zero at position 1 must skip prime 3")
	assert.InDelta(t, 0.4, o.Balance, 1e-12)
}

// TestWeigh_RealDivision verifies the balance keeps fractional precision.
func TestWeigh_RealDivision(t *testing.T) {
	o, err := primorial.Weigh([]int{1, 1, -1, -1})
	require.NoError(t, err)

	assert.EqualValues(t, 6, o.Numerator)
	assert.EqualValues(t, 35, o.Denominator)
	assert.InDelta(t, 6.0/35.0, o.Balance, 1e-12, "6/35 must not truncate to 0")
}

// TestWeigh_EmptySequence verifies the neutral weight 1/1.
func TestWeigh_EmptySequence(t *testing.T) {
	o, err := primorial.Weigh(nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, o.Numerator)
	assert.EqualValues(t, 1, o.Denominator)
	assert.Equal(t, 1.0, o.Balance)
}

// TestWeigh_TableExhausted verifies a sequence longer than the prime
// table fails hard instead of truncating.
func TestWeigh_TableExhausted(t *testing.T) {
	long := make([]int, 13) // one past the 12-prime table
	for i := range long {
		long[i] = 1
		if i%2 == 0 {
			long[i] = -1
		}
	}
	_, err := primorial.Weigh(long)
	assert.ErrorIs(t, err, primorial.ErrTableExhausted)
}

// TestWeigh_CopiesInput verifies the orbital owns its jumps: mutating the
// caller's slice afterwards must not change the stored sequence.
func TestWeigh_CopiesInput(t *testing.T) {
	seq := []int{1, -1}
	o, err := primorial.Weigh(seq)
	require.NoError(t, err)

	seq[0] = -1
	assert.Equal(t, []int{1, -1}, o.Jumps, "Weigh must copy the sequence")
}
