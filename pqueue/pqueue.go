// Package pqueue implements a min-priority queue keyed by comparable values
// with in-place decrease-key.
//
// The queue is a binary heap (container/heap) plus a key → item index map, so
// both Update and PopMin run in O(log n). A key that has been popped is
// finalized: later Updates for it are ignored and it can never be returned a
// second time, unless it is explicitly put back with Reopen. Equal priorities
// pop in insertion order.
//
// A Queue is not safe for concurrent use.
package pqueue

import (
	"container/heap"
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmptyQueue is returned by PopMin when no entries remain.
var ErrEmptyQueue = errors.New("pqueue: queue is empty")

// item is one queued key. index is its slot in the heap slice, -1 once popped.
type item[K comparable, P constraints.Ordered] struct {
	key      K
	priority P
	seq      uint64 // insertion sequence, breaks priority ties
	index    int
}

// itemHeap satisfies heap.Interface and keeps item.index current.
type itemHeap[K comparable, P constraints.Ordered] []*item[K, P]

func (h itemHeap[K, P]) Len() int { return len(h) }

func (h itemHeap[K, P]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h itemHeap[K, P]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap[K, P]) Push(x any) {
	it := x.(*item[K, P])
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *itemHeap[K, P]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // avoid memory leak
	it.index = -1
	*h = old[:n-1]

	return it
}

// Queue is a min-priority queue with decrease-key semantics.
type Queue[K comparable, P constraints.Ordered] struct {
	heap  itemHeap[K, P]
	items map[K]*item[K, P] // queued keys only
	done  map[K]struct{}    // popped keys
	seq   uint64
}

// New returns an empty Queue.
func New[K comparable, P constraints.Ordered]() *Queue[K, P] {
	return &Queue[K, P]{
		items: make(map[K]*item[K, P]),
		done:  make(map[K]struct{}),
	}
}

// Len returns the number of queued keys.
func (q *Queue[K, P]) Len() int { return len(q.heap) }

// Update inserts key with priority if it is absent, or lowers its priority if
// the new value is strictly smaller. It returns true when the queue changed.
// Keys that were already popped are ignored.
func (q *Queue[K, P]) Update(key K, priority P) bool {
	if _, ok := q.done[key]; ok {
		return false
	}

	if it, ok := q.items[key]; ok {
		if priority >= it.priority {
			return false
		}
		it.priority = priority
		heap.Fix(&q.heap, it.index)

		return true
	}

	it := &item[K, P]{key: key, priority: priority, seq: q.seq}
	q.seq++
	heap.Push(&q.heap, it)
	q.items[key] = it

	return true
}

// PopMin removes and returns the key with the lowest priority and finalizes it.
// It returns ErrEmptyQueue when the queue is empty.
func (q *Queue[K, P]) PopMin() (K, P, error) {
	if len(q.heap) == 0 {
		var (
			k K
			p P
		)
		return k, p, ErrEmptyQueue
	}

	it := heap.Pop(&q.heap).(*item[K, P])
	delete(q.items, it.key)
	q.done[it.key] = struct{}{}

	return it.key, it.priority, nil
}

// Peek returns the lowest entry without removing it.
func (q *Queue[K, P]) Peek() (K, P, bool) {
	if len(q.heap) == 0 {
		var (
			k K
			p P
		)
		return k, p, false
	}

	return q.heap[0].key, q.heap[0].priority, true
}

// Priority returns the queued priority of key. ok is false for keys that are
// not currently queued, including popped ones.
func (q *Queue[K, P]) Priority(key K) (p P, ok bool) {
	it, ok := q.items[key]
	if !ok {
		return p, false
	}

	return it.priority, true
}

// Reopen puts a popped key back into the queue with priority, clearing its
// finalized mark. It returns false, and does nothing, for keys that were
// never popped; use Update for those.
func (q *Queue[K, P]) Reopen(key K, priority P) bool {
	if _, ok := q.done[key]; !ok {
		return false
	}
	delete(q.done, key)

	return q.Update(key, priority)
}

// Done reports whether key has been popped and not reopened.
func (q *Queue[K, P]) Done(key K) bool {
	_, ok := q.done[key]
	return ok
}
