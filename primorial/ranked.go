package primorial

import (
	"fmt"
	"io"

	"github.com/katalvlaran/orbitals/orbit"
)

// Ranked produces the complete, ascending-by-balance listing of all
// weighted orbitals for one length.
//
// A Ranked instance owns its collection exclusively; separate instances
// never share state, so independent rankings may run concurrently.
type Ranked struct {
	gen      *orbit.Generator
	orbitals []Orbital
	err      error
}

// NewRanked builds a ranked generator for the given length. Length
// clamping follows orbit.New (fail-soft to MinLength with a diagnostic);
// extra orbit options may redirect the diagnostic writer.
func NewRanked(length int, opts ...orbit.Option) *Ranked {
	r := &Ranked{}
	// The weighing hook must win over any caller-supplied hook.
	opts = append(opts, orbit.WithOnSequence(r.take))
	r.gen = orbit.New(length, opts...)
	return r
}

// Length returns the effective sequence length after clamping.
func (r *Ranked) Length() int { return r.gen.Length() }

// Generate resets the collection, runs the full enumeration, and returns
// every weighted orbital in ascending balance order. The slice is owned
// by the Ranked instance and re-created on the next call.
func (r *Ranked) Generate() ([]Orbital, error) {
	r.orbitals = make([]Orbital, 0, r.gen.Total())
	r.err = nil

	r.gen.Generate()
	if r.err != nil {
		return nil, r.err
	}
	return r.orbitals, nil
}

// take weighs one sequence and inserts it into the sorted collection.
// The first weighing error latches and aborts all further work.
func (r *Ranked) take(seq []int) {
	if r.err != nil {
		return
	}
	o, err := Weigh(seq)
	if err != nil {
		r.err = err
		return
	}
	r.insert(o)
}

// insert places o by scanning from the end and swapping backward until
// the predecessor's balance is ≤ its own. Stable: equal balances keep
// arrival order.
func (r *Ranked) insert(o Orbital) {
	r.orbitals = append(r.orbitals, o)
	for i := len(r.orbitals) - 1; i > 0; i-- {
		if r.orbitals[i-1].Balance <= r.orbitals[i].Balance {
			break
		}
		r.orbitals[i-1], r.orbitals[i] = r.orbitals[i], r.orbitals[i-1]
	}
}

// Write renders the collection from the last Generate call, one orbital
// per line in ascending balance order.
func (r *Ranked) Write(w io.Writer) error {
	for i := range r.orbitals {
		if _, err := fmt.Fprintln(w, r.orbitals[i].String()); err != nil {
			return fmt.Errorf("primorial: write: %w", err)
		}
	}
	return nil
}
