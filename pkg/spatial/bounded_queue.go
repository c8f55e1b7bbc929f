package spatial

import "container/heap"

// neighbor is one candidate in a k-NN result: the index into the
// original point slice and its squared distance to the query point.
type neighbor struct {
	Index  int
	DistSq float32
}

// neighborHeap is a max-heap on DistSq, so the worst-so-far candidate
// sits at the root and can be evicted in O(log k).
type neighborHeap []neighbor

func (h neighborHeap) Len() int            { return len(h) }
func (h neighborHeap) Less(i, j int) bool  { return h[i].DistSq > h[j].DistSq }
func (h neighborHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *neighborHeap) Push(x interface{}) { *h = append(*h, x.(neighbor)) }
func (h *neighborHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// BoundedQueue holds the k closest candidates seen so far, keyed by
// squared distance. It backs the k-d tree's k-NN query.
type BoundedQueue struct {
	k int
	h neighborHeap
}

// NewBoundedQueue creates a queue that retains at most k candidates.
func NewBoundedQueue(k int) *BoundedQueue {
	return &BoundedQueue{k: k, h: make(neighborHeap, 0, k)}
}

// Len returns the number of candidates currently held.
func (b *BoundedQueue) Len() int { return b.h.Len() }

// Full reports whether the queue already holds k candidates.
func (b *BoundedQueue) Full() bool { return b.h.Len() >= b.k }

// Worst returns the largest squared distance currently held. Callers
// must not call this on an empty queue.
func (b *BoundedQueue) Worst() float32 { return b.h[0].DistSq }

// Add offers a candidate to the queue. If the queue is not yet full it
// is kept unconditionally; otherwise it replaces the current worst
// candidate only if it is strictly closer.
func (b *BoundedQueue) Add(index int, distSq float32) {
	if b.k <= 0 {
		return
	}
	if !b.Full() {
		heap.Push(&b.h, neighbor{Index: index, DistSq: distSq})
		return
	}
	if distSq < b.h[0].DistSq {
		heap.Pop(&b.h)
		heap.Push(&b.h, neighbor{Index: index, DistSq: distSq})
	}
}

// Results drains the queue into an index slice and the maximum squared
// distance among them (0 if the queue is empty).
func (b *BoundedQueue) Results() ([]int, float32) {
	if b.h.Len() == 0 {
		return nil, 0
	}
	maxSq := b.h[0].DistSq
	indices := make([]int, b.h.Len())
	for i, n := range b.h {
		indices[i] = n.Index
	}
	return indices, maxSq
}
