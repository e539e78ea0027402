// Package pqueue provides a generic, comparator-driven priority queue used
// as the frontier of the best-first searches in lvmapf.
//
// What:
//
//   - PriorityQueue[T] is an array-backed binary heap.
//   - Ordering is defined by an explicit three-way Comparator[T]; there is
//     no default ordering, so every construction states its direction.
//   - Slots vacated by Remove are recorded on a free list and reused
//     (most recently freed first) by the next Insert.
//
// Complexity:
//
//   - Len:    O(1)
//   - Insert: O(log n)
//   - Remove: O(log n)
//   - Peek:   O(1)
//
// Errors:
//
//   - ErrNilComparator: New was called without a comparator.
//   - ErrEmptyQueue:    Remove or Peek on an empty queue.
//
// Duplicate priorities are allowed; their relative extraction order is
// unspecified. A PriorityQueue is not safe for concurrent use.
package pqueue
