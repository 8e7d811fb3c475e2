package dynprog_test

import (
	"testing"

	"github.com/katalvlaran/statespace/dynprog"
	"github.com/katalvlaran/statespace/transport"
)

// BenchmarkSearch_Transport fills the memo for 2,000 blocks. Recursion depth
// grows with N, so keep it moderate.
func BenchmarkSearch_Transport(b *testing.B) {
	p, _ := transport.New(2000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dynprog.Search[int, int](p)
	}
}
