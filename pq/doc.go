// Package pq provides an indexed min-priority queue with logarithmic
// decrease-key, keyed by a caller-supplied identity.
//
// What
//
//   - Queue[K, E] stores at most one element per distinct key K.
//   - Elements are ordered by an injected total-order comparator
//     (negative result ⇒ left operand has the better, i.e. smaller, priority).
//   - A side index maps every present key to its exact heap slot, so an
//     element can be found and promoted in place.
//
// Why
//
//   - Uniform-cost search and A* repeatedly discover cheaper paths to states
//     already sitting in the frontier. A plain heap either grows with stale
//     duplicates ("lazy decrease-key", as the classic Dijkstra runner does) or
//     needs an O(n) scan. Queue replaces the existing entry and restores heap
//     order upward in O(log n).
//
// Offer semantics
//
//   - Unknown key: append, sift up, return true.
//   - Known key, new element strictly better: overwrite the slot, sift up,
//     return true.
//   - Known key, new element equal or worse: reject, queue unchanged, return false.
//
// Complexity
//
//   - Offer, Poll: O(log n) time.
//   - Peek, Len, IsEmpty, Contains, Get: O(1) time.
//   - Space: O(n) for the heap slice plus the key index.
//
// Concurrency
//
//	Queue is not safe for concurrent use; each search invocation owns its
//	own queue.
//
// Usage
//
//	q := pq.New(
//	    func(it item) string { return it.id },
//	    func(a, b item) int { return cmp.Compare(a.prio, b.prio) },
//	)
//	q.Offer(item{"A", 5})
//	q.Offer(item{"A", 1}) // promoted in place
//	top, ok := q.Poll()
package pq
