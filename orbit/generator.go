// Package orbit implements the orbital generator: the driver that maps
// every combination emitted by combin into concrete jump sequences and
// dispatches them to a consumer.
package orbit

import (
	"fmt"

	"github.com/katalvlaran/orbitals/combin"
)

// Generator enumerates all jump sequences of one length.
//
// A Generator owns all of its mutable state; independent instances never
// share anything, so concurrent use of separate generators is safe.
// Generate itself is synchronous and runs to completion.
type Generator struct {
	length int  // effective (possibly clamped) sequence length n
	span   int  // N: even working width (n, or n-1 for odd n)
	odd    bool // a single 0 must be spliced into every sequence
	choose int  // t = span/2: number of -1 positions
	opts   Options
	count  int
}

// New builds a Generator for sequences of the requested length.
//
// Lengths outside [MinLength, MaxLength] are clamped to MinLength and a
// single diagnostic line is written to the Diagnostics writer; generation
// then proceeds normally (fail-soft, never an abort).
func New(length int, opts ...Option) *Generator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if length < MinLength || length > MaxLength {
		fmt.Fprintf(o.Diagnostics,
			"orbit: length %d outside [%d, %d], clamped to %d\n",
			length, MinLength, MaxLength, MinLength)
		length = MinLength
	}

	span := length
	odd := length%2 != 0
	if odd {
		span = length - 1
	}

	return &Generator{
		length: length,
		span:   span,
		odd:    odd,
		choose: span / 2,
		opts:   o,
	}
}

// Length returns the effective sequence length after clamping.
func (g *Generator) Length() int { return g.length }

// Total returns the number of sequences Generate will produce, from the
// closed form: C(N, N/2) base patterns, times Length() insertion
// positions when a zero must be spliced in.
func (g *Generator) Total() int {
	total := int(combin.Count(g.span, g.choose))
	if g.odd {
		total *= g.length
	}
	return total
}

// Generate runs the full enumeration once, invoking the OnSequence hook
// (or the default textual dump) exactly once per sequence, and returns
// the total number of sequences produced.
//
// The counter is reset on entry, so repeated calls are idempotent: same
// sequences, same order, same count every time.
func (g *Generator) Generate() int {
	g.count = 0

	emit := g.opts.OnSequence
	if emit == nil {
		emit = func(seq []int) { fmt.Fprintf(g.opts.Output, "%v\n", seq) }
	}

	base := make([]int, g.span)  // even-width sequence, rebuilt per combination
	seq := make([]int, g.length) // splice buffer for odd lengths

	// Each combination marks the -1 positions, counted from the end of
	// the base. Even lengths emit the base directly; odd lengths splice
	// a single 0 at every position, one sequence per position.
	_ = combin.Enumerate(g.span, g.choose, func(comb []int) error {
		for i := range base {
			base[i] = 1
		}
		for _, c := range comb {
			base[g.span-1-c] = -1
		}

		if !g.odd {
			emit(base)
			g.count++
			return nil
		}
		for i := 0; i < g.length; i++ {
			copy(seq[:i], base[:i])
			seq[i] = 0
			copy(seq[i+1:], base[i:])
			emit(seq)
			g.count++
		}
		return nil
	})

	return g.count
}
