package pqueue

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for priority queue operations.
var (
	// ErrNilComparator indicates New was called with a nil Comparator.
	ErrNilComparator = errors.New("pqueue: comparator is nil")

	// ErrEmptyQueue indicates Remove or Peek was called on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")
)

// Comparator reports which of two items leaves the queue first.
// It returns a negative number when a must be extracted before b,
// a positive number when b must be extracted before a, and zero otherwise.
type Comparator[T any] func(a, b T) int

// Ascending orders items from the smallest to the largest.
func Ascending[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// Descending orders items from the largest to the smallest.
func Descending[T constraints.Ordered]() Comparator[T] {
	asc := Ascending[T]()
	return func(a, b T) int { return asc(b, a) }
}

// ByKey orders items ascending by an extracted key.
// Wrap the result with Reverse for a descending order.
func ByKey[T any, K constraints.Ordered](key func(T) K) Comparator[T] {
	asc := Ascending[K]()
	return func(a, b T) int { return asc(key(a), key(b)) }
}

// Reverse flips the extraction order of cmp.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int { return cmp(b, a) }
}

// slot is one heap cell; used is false for reclaimed cells awaiting reuse.
type slot[T any] struct {
	item T
	used bool
}

// PriorityQueue is a binary heap over a slice of slots plus a LIFO free list.
//
// Heap property: for every live slot i with a live parent p,
// cmp(data[p], data[i]) <= 0. Free slots never have live descendants.
type PriorityQueue[T any] struct {
	cmp   Comparator[T]
	data  []slot[T]
	free  []int
	count int
}
