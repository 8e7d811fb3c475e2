package pqueue_test

import (
	"testing"

	"github.com/katalvlaran/statespace/pqueue"
)

// BenchmarkQueue_UpdatePop inserts 10,000 keys, lowers every other one and
// drains the queue.
func BenchmarkQueue_UpdatePop(b *testing.B) {
	const n = 10000
	for i := 0; i < b.N; i++ {
		q := pqueue.New[int, int]()
		for k := 0; k < n; k++ {
			q.Update(k, n-k)
		}
		for k := 0; k < n; k += 2 {
			q.Update(k, -k)
		}
		for q.Len() > 0 {
			_, _, _ = q.PopMin()
		}
	}
}
