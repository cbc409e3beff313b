// Package orbit defines length limits and tunable options for jump
// sequence generation.
package orbit

import (
	"io"
	"os"
)

// Length limits for a jump sequence.
//
// MaxLength is tied to primes.Size(): the primorial weight of a sequence
// consumes one prime per position, so the two must be raised in tandem.
// The combination workspace is sized from the same bound.
const (
	// MinLength is the shortest supported sequence; also the fail-soft
	// fallback for out-of-range requests.
	MinLength = 1

	// MaxLength is the longest supported sequence.
	MaxLength = 12
)

// Option configures a Generator via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing generation.
type Options struct {
	// OnSequence is called once per generated sequence, in enumeration
	// order. The slice is reused between calls: hooks that retain a
	// sequence must copy it. When nil, Generate dumps each sequence as
	// text to Output instead.
	OnSequence func(seq []int)

	// Output receives the default textual dump (one "%v" line per
	// sequence) when no OnSequence hook is set.
	Output io.Writer

	// Diagnostics receives the single warning line written when a
	// requested length is clamped to MinLength.
	Diagnostics io.Writer
}

// DefaultOptions returns Options with sane defaults:
//   - no hook (textual dump)
//   - Output = os.Stdout
//   - Diagnostics = os.Stderr
func DefaultOptions() Options {
	return Options{
		OnSequence:  nil,
		Output:      os.Stdout,
		Diagnostics: os.Stderr,
	}
}

// WithOnSequence registers the per-sequence hook, replacing the default
// textual dump.
func WithOnSequence(fn func(seq []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSequence = fn
		}
	}
}

// WithOutput redirects the default textual dump.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Output = w
		}
	}
}

// WithDiagnostics redirects clamp warnings.
func WithDiagnostics(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Diagnostics = w
		}
	}
}
