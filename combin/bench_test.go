package combin_test

import (
	"testing"

	"github.com/katalvlaran/orbitals/combin"
)

// benchmarkEnumerate runs a full C(n,t) enumeration per iteration with a
// no-op visitor, so only the advance loop is measured.
func benchmarkEnumerate(b *testing.B, n, t int) {
	visit := func([]int) error { return nil }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := combin.Enumerate(n, t, visit); err != nil {
			b.Fatalf("Enumerate failed: %v", err)
		}
	}
}

// BenchmarkEnumerate_C10_5 benchmarks C(10,5) = 252 subsets.
func BenchmarkEnumerate_C10_5(b *testing.B) { benchmarkEnumerate(b, 10, 5) }

// BenchmarkEnumerate_C12_6 benchmarks the largest workspace, C(12,6) = 924.
func BenchmarkEnumerate_C12_6(b *testing.B) { benchmarkEnumerate(b, 12, 6) }
