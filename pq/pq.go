package pq

import (
	"container/heap"
	"iter"
)

// Queue is a min-priority queue holding at most one element per key.
// The zero value is not usable; construct with New.
type Queue[K comparable, E any] struct {
	h slots[K, E]
}

// New returns an empty Queue. key extracts the identity of an element and
// cmp is a total order over elements: cmp(a, b) < 0 means a has the
// smaller (better) priority. Panics if either function is nil.
func New[K comparable, E any](key func(E) K, cmp func(a, b E) int) *Queue[K, E] {
	if key == nil {
		panic("pq: New with nil key function")
	}
	if cmp == nil {
		panic("pq: New with nil comparator")
	}

	return &Queue[K, E]{
		h: slots[K, E]{
			index: make(map[K]int),
			key:   key,
			cmp:   cmp,
		},
	}
}

// Offer inserts e, or promotes the element already stored under e's key.
// It returns false and leaves the queue unchanged when an element with the
// same key is present and e's priority is not strictly better.
func (q *Queue[K, E]) Offer(e E) bool {
	k := q.h.key(e)
	i, ok := q.h.index[k]
	if !ok {
		heap.Push(&q.h, e)

		return true
	}
	if q.h.cmp(e, q.h.data[i]) >= 0 {
		return false
	}

	// Same key, so the index entry for slot i stays valid.
	q.h.data[i] = e
	// A strictly smaller priority is still ordered against the old children;
	// Fix finds nothing to push down and sifts the slot up.
	heap.Fix(&q.h, i)

	return true
}

// Peek returns the minimum element without removing it.
// The boolean is false when the queue is empty.
func (q *Queue[K, E]) Peek() (E, bool) {
	if len(q.h.data) == 0 {
		var zero E

		return zero, false
	}

	return q.h.data[0], true
}

// Poll removes and returns the minimum element.
// The boolean is false when the queue is empty.
func (q *Queue[K, E]) Poll() (E, bool) {
	if len(q.h.data) == 0 {
		var zero E

		return zero, false
	}

	return heap.Pop(&q.h).(E), true
}

// Len reports the number of queued elements.
func (q *Queue[K, E]) Len() int { return len(q.h.data) }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[K, E]) IsEmpty() bool { return len(q.h.data) == 0 }

// Contains reports whether an element with key k is queued.
func (q *Queue[K, E]) Contains(k K) bool {
	_, ok := q.h.index[k]

	return ok
}

// Get returns the element currently stored under key k.
func (q *Queue[K, E]) Get(k K) (E, bool) {
	i, ok := q.h.index[k]
	if !ok {
		var zero E

		return zero, false
	}

	return q.h.data[i], true
}

// All yields the queued elements in heap-slot order, which is unspecified
// with respect to priority. The queue must not be mutated during iteration.
func (q *Queue[K, E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range q.h.data {
			if !yield(e) {
				return
			}
		}
	}
}

// Reset drops every element while keeping allocated capacity.
func (q *Queue[K, E]) Reset() {
	clear(q.h.data)
	q.h.data = q.h.data[:0]
	clear(q.h.index)
}

// slots is the heap.Interface backing a Queue. Swap, Push and Pop keep the
// key index in step with every structural change.
type slots[K comparable, E any] struct {
	data  []E
	index map[K]int
	key   func(E) K
	cmp   func(a, b E) int
}

func (s *slots[K, E]) Len() int { return len(s.data) }

// Less is strict, so sifting stops on ties and a right child is preferred
// only when it is strictly smaller than the left one.
func (s *slots[K, E]) Less(i, j int) bool { return s.cmp(s.data[i], s.data[j]) < 0 }

func (s *slots[K, E]) Swap(i, j int) {
	s.data[i], s.data[j] = s.data[j], s.data[i]
	s.index[s.key(s.data[i])] = i
	s.index[s.key(s.data[j])] = j
}

// Push appends x at the end; called by heap.Push before sifting up.
func (s *slots[K, E]) Push(x any) {
	e := x.(E)
	s.index[s.key(e)] = len(s.data)
	s.data = append(s.data, e)
}

// Pop removes the last slot; heap.Pop has already swapped the root there.
func (s *slots[K, E]) Pop() any {
	n := len(s.data) - 1
	e := s.data[n]
	var zero E
	s.data[n] = zero // release references held by the backing array
	s.data = s.data[:n]
	delete(s.index, s.key(e))

	return e
}
